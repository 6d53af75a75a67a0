// Package agent runs the external AI review agent.
//
// The agent is an opaque subprocess. gpr hands it a natural-language
// instruction and a working directory, waits for it to exit, and later
// checks for the report file it was told to write. The exit code is recorded
// but is not a success signal.
//
// Example usage:
//
//	a := agent.NewGeminiAgent("gemini")
//	if err := a.IsAvailable(); err != nil {
//	    log.Fatal(err)
//	}
//	res, err := a.Review(ctx, reviewDir, prompt)
//
// The agent runs in its own process group. When ctx is canceled the whole
// group is killed so no orphaned children keep running.
package agent
