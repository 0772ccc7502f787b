package cmd

import (
	"flag"

	"github.com/etnz/planner/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	top := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.txt"),
			"verbose":     predict.Nothing,
		},
	}
	for _, c := range Commands {
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = flagPredictor(f) })
		top.Sub[c.Name()] = sub
	}

	top.Sub["add"].Flags["type"] = predict.Set{"income", "expense"}
	top.Sub["fmt"].Flags["o"] = predict.Files("*.txt")
	if topics, err := docs.GetAllTopics(); err == nil {
		top.Sub["topic"].Args = predict.Set(topics)
	}
	return top
}

func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}
