package bank

// Static vocabularies used to fill template placeholders. Loaded once per
// run; draw operations never mutate them.

var topics = []string{
	// Business & Marketing
	"marketing strategy", "brand positioning", "customer acquisition", "retention metrics",
	"social media campaign", "content marketing", "SEO optimization", "email automation",
	"lead generation", "conversion funnel", "A/B testing", "user personas",
	"competitive analysis", "market research", "pricing strategy", "product launch",

	// Product & Engineering
	"feature architecture", "API design", "database schema", "caching strategy",
	"performance optimization", "code refactoring", "technical debt", "microservices",
	"authentication flow", "authorization patterns", "error handling", "logging strategy",
	"CI/CD pipeline", "deployment automation", "monitoring setup", "incident response",
	"mobile optimization", "offline support", "data migration", "versioning strategy",

	// Design & UX
	"user onboarding", "navigation patterns", "color scheme", "typography system",
	"component library", "design tokens", "accessibility improvements", "mobile UX",
	"dark mode implementation", "animation principles", "icon system", "layout grid",
	"form validation UX", "error messaging", "loading states", "empty states",

	// Growth & Strategy
	"growth hacking", "viral loops", "referral program", "partnership strategy",
	"investor pitch", "fundraising deck", "unit economics", "market expansion",
	"international launch", "localization", "pricing tiers", "freemium model",

	// Personal Development
	"learning roadmap", "skill development", "reading list", "networking strategy",
	"time management", "productivity system", "habit formation", "goal setting",
	"morning routine", "evening routine", "meditation practice", "exercise plan",

	// Content & Writing
	"blog post series", "newsletter topics", "podcast episodes", "video content",
	"case studies", "whitepapers", "documentation", "help articles",
	"social posts", "ad copy", "landing pages", "email sequences",

	// Research
	"user research", "market trends", "competitor analysis", "technology evaluation",
	"framework comparison", "best practices", "industry benchmarks", "case study analysis",
}

var tasks = []string{
	// Communication
	"call mom", "call dad", "call Sarah", "call John", "call the dentist",
	"email the team", "email investors", "email marketing", "email support",
	"text Alex", "text the group", "message the client", "follow up with leads",
	"schedule meeting with product", "book 1:1 with manager", "set up call with design",

	// Work
	"finish the report", "review the PR", "update documentation", "fix the bug",
	"write tests", "deploy to staging", "merge the feature branch", "update dependencies",
	"create the presentation", "prepare for standup", "update the roadmap", "write specs",
	"review analytics", "check metrics", "update dashboards", "run experiments",
	"interview candidates", "review applications", "prepare interview questions",

	// Personal
	"buy groceries", "pick up laundry", "return package", "pay bills",
	"renew subscription", "cancel gym membership", "book dentist", "schedule haircut",
	"water plants", "clean apartment", "do laundry", "cook dinner",
	"exercise", "meditate", "read for 30 minutes", "practice Spanish",
	"take vitamins", "drink water", "go for a walk", "stretch",

	// Shopping
	"order supplies", "buy birthday gift", "get flowers", "pick up prescription",
	"return shoes", "exchange jacket", "order office supplies", "buy charger",

	// Errands
	"drop off mail", "go to bank", "visit post office", "get car serviced",
	"renew license", "update passport", "file taxes", "submit expense report",
}

var projects = []string{
	"marketing", "product", "engineering", "design", "sales", "operations",
	"personal", "health", "finance", "learning", "side project", "home",
	"q1 goals", "q2 planning", "annual review", "strategic initiative",
	"app redesign", "backend migration", "mobile app", "web platform",
	"customer success", "support", "content", "growth", "partnerships",
}

var personNames = []string{
	"Michael", "Sarah", "John", "Emily", "David", "Lisa", "James", "Jennifer",
	"Robert", "Jessica", "William", "Ashley", "Christopher", "Amanda", "Daniel",
	"Nicole", "Matthew", "Stephanie", "Anthony", "Melissa", "Mark", "Michelle",
	"Andrew", "Elizabeth", "Joshua", "Kimberly", "Steven", "Rebecca", "Kevin",
	"Laura", "Brian", "Rachel", "Alex", "Chris", "Sam", "Jordan", "Taylor",
	"Morgan", "Casey", "Jamie", "Cameron", "Drew", "Pat", "Quinn", "Riley",
	"Dr. Smith", "Dr. Johnson", "Professor Lee", "Coach Williams",
}

var companyNames = []string{
	"Acme", "TechCorp", "GlobalSoft", "Innovate Inc", "StartupX", "ClientCo",
	"PartnerGroup", "VentureOne", "CloudNine", "DataDriven", "NextGen",
	"BlueChip", "GreenLeaf", "RedRock", "SilverLine", "GoldStar",
}

var times = []string{
	"9am", "10am", "11am", "12pm", "1pm", "2pm", "3pm", "4pm", "5pm", "6pm",
	"9", "10", "11", "12", "1", "2", "3", "4", "5", "6",
	"9:30", "10:30", "11:30", "12:30", "1:30", "2:30", "3:30", "4:30",
	"morning", "afternoon", "evening", "noon", "end of day", "close of business",
}

var relativeTimes = []string{
	"tomorrow", "next week", "next Monday", "next Tuesday", "next Wednesday",
	"this Friday", "this weekend", "in an hour", "in 2 hours", "in 30 minutes",
	"later today", "tonight", "this evening", "next month", "end of week",
}

// Duration is a human phrase paired with its minute value so one draw yields
// display text and metadata consistently.
type Duration struct {
	Phrase  string
	Minutes int
}

var durations = []Duration{
	{"30 minutes", 30}, {"1 hour", 60}, {"1.5 hours", 90}, {"2 hours", 120},
	{"45 minutes", 45}, {"15 minutes", 15}, {"3 hours", 180}, {"half hour", 30},
	{"an hour", 60}, {"couple hours", 120},
}

var priorities = []string{"low", "medium", "high"}

// RefKind classifies a project reference.
type RefKind string

const (
	RefPerson  RefKind = "person"
	RefCompany RefKind = "company"
	RefProject RefKind = "project"
)

// ProjectRef is a person, company, or generic project that an entity can be
// linked to.
type ProjectRef struct {
	Name string
	Kind RefKind
}

var meetingPeople = []string{
	"John", "Sarah", "Alex", "Mike", "Lisa", "David", "Emily", "Chris",
	"Rachel", "Tom", "the team", "marketing", "design", "engineering", "product",
}

var blockNames = []string{
	"deep work", "focused coding", "writing time", "review session", "planning",
	"research", "reading", "admin tasks", "emails", "brainstorming",
}

var dimensions = []string{
	"cognitive", "creative", "physiological", "behavioral", "knowledge", "reflection",
}

var feelings = []string{
	"great", "amazing", "tired", "energized", "focused", "stressed", "calm",
	"happy", "productive", "creative", "motivated", "relaxed", "anxious",
	"excited", "peaceful", "content", "overwhelmed", "optimistic",
}

var gratitudeContent = []string{
	"my team", "my health", "my family", "good sleep", "productive day",
	"the sunshine", "my morning coffee", "finishing the project", "supportive friends",
	"learning something new", "a good workout", "peaceful morning", "nice weather",
}

var learningContent = []string{
	"how to optimize database queries", "a new design pattern", "the importance of rest",
	"better communication skills", "time management techniques", "a new Swift feature",
	"how to handle errors gracefully", "the value of deep work", "how to prioritize",
}

var generalContent = []string{
	"my work-life balance", "improving my productivity", "building better habits",
	"being more present", "focusing on what matters", "taking care of my health",
	"learning new skills", "connecting with others", "simplifying my life",
}

var exercises = []string{
	"push ups", "pull ups", "squats", "deadlifts", "bench press",
	"lunges", "planks", "burpees", "jumping jacks", "sit ups",
}
