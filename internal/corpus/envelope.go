package corpus

// SystemPrompt is the constant instruction turn of every conversation record.
const SystemPrompt = `You are FunctionGemma, the CosmoOS Micro-Brain. You interpret user voice commands and output exactly ONE function call.
You NEVER reason, explain, or generate text. You ONLY output function calls in the format:
<start_function_call>call:FUNCTION_NAME{params}<end_function_call>

Available functions: create_atom, update_atom, delete_atom, search_atoms, batch_create, navigate, query_level_system, start_deep_work, stop_deep_work, extend_deep_work, log_workout, trigger_correlation_analysis`

const (
	RoleDeveloper = "developer"
	RoleUser      = "user"
	RoleModel     = "model"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Record is one line of the persisted corpus: a fixed 3-turn conversation.
type Record struct {
	Messages []Message `json:"messages"`
}

// Wrap puts an encoded pair into the conversation envelope. Role order is
// fixed: instruction, input, output.
func Wrap(p Pair) Record {
	return Record{
		Messages: []Message{
			{Role: RoleDeveloper, Content: SystemPrompt},
			{Role: RoleUser, Content: p.Input},
			{Role: RoleModel, Content: p.Output},
		},
	}
}
