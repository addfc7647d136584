package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
	"github.com/cosmoos/voicegen/internal/encode"
	"github.com/cosmoos/voicegen/internal/gen"
	"github.com/cosmoos/voicegen/internal/output"
	"github.com/cosmoos/voicegen/internal/validate"
)

var (
	generateOut        string
	generateSeed       int64
	generateConfig     string
	generateSampleSize int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the training corpus",
	Long: `Generate the full corpus: run every category generator, encode the
examples into the function-call grammar, shuffle, split off validation,
and write train.jsonl, valid.jsonl, and an inspection sample.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "training_data", "Output directory")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 = wall clock)")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Path to a YAML config overriding seed and targets")
	generateCmd.Flags().IntVar(&generateSampleSize, "sample-size", 100, "Number of examples in the inspection sample")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	categories := gen.Registry()
	seed := generateSeed

	if generateConfig != "" {
		cfg, err := gen.LoadConfig(generateConfig)
		if err != nil {
			return err
		}
		if seed == 0 {
			seed = cfg.Seed
		}
		categories, err = gen.ApplyTargets(categories, cfg.Targets)
		if err != nil {
			return err
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Msg("generating corpus")

	rng := rand.New(rand.NewSource(seed))
	b := bank.New(rng)

	var all []corpus.Example
	byCategory := make(map[string][]corpus.Example, len(categories))
	for _, cat := range categories {
		examples, err := cat.Generate(b, rng, cat.Target)
		if err != nil {
			return fmt.Errorf("category %s: %w", cat.Name, err)
		}
		if len(examples) != cat.Target {
			return fmt.Errorf("category %s produced %d examples, want %d", cat.Name, len(examples), cat.Target)
		}
		log.Info().Str("category", cat.Name).Int("count", len(examples)).Msg("generated")
		byCategory[cat.Name] = examples
		all = append(all, examples...)
	}
	log.Info().Int("total", len(all)).Msg("generation done")

	findings := validate.Check(all)
	if len(findings) > 0 {
		log.Warn().Int("findings", len(findings)).Msg("validation findings (examples kept)")
		for i, f := range findings {
			if i >= 10 {
				log.Warn().Msgf("... and %d more", len(findings)-10)
				break
			}
			log.Warn().Msg(f.String())
		}
	} else {
		log.Info().Msg("validation clean")
	}

	pairs := make([]corpus.Pair, 0, len(all))
	for _, ex := range all {
		out, err := encode.Encode(ex)
		if err != nil {
			return fmt.Errorf("encode %q: %w", ex.Input, err)
		}
		pairs = append(pairs, corpus.Pair{Input: ex.Input, Output: out})
	}

	split := corpus.NewAssembler(rng).Assemble(pairs)
	log.Info().Int("train", len(split.Train)).Int("valid", len(split.Valid)).Msg("split assembled")

	writer := output.NewWriter(generateOut)
	files, err := writer.WriteSplit(split)
	if err != nil {
		return err
	}
	for _, f := range files {
		log.Info().Str("file", f).Msg("written")
	}

	sample := inspectionSample(byCategory, rng, generateSampleSize)
	samplePath, err := writer.WriteSample(sample)
	if err != nil {
		return err
	}
	log.Info().Str("file", samplePath).Int("examples", len(sample)).Msg("sample written")

	return nil
}

// inspectionSample draws the review set from the two biggest creation
// categories, half each, then shuffles so the file is not sorted by shape.
func inspectionSample(byCategory map[string][]corpus.Example, rng *rand.Rand, size int) []corpus.Example {
	half := size / 2
	sample := make([]corpus.Example, 0, size)
	sample = append(sample, head(byCategory["simple_creation"], half)...)
	sample = append(sample, head(byCategory["project_creation"], size-len(sample))...)
	rng.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	return sample
}

func head(examples []corpus.Example, n int) []corpus.Example {
	if len(examples) < n {
		n = len(examples)
	}
	return examples[:n]
}
