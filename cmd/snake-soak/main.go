package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/game"
	"gridsnake/internal/stats"
)

func main() {
	rounds := flag.Int("rounds", 200, "rounds to simulate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first round; round i uses seed+i")
	policyName := flag.String("policy", "", "food placement policy (overlap, reroll); empty uses the config")
	maxTicks := flag.Int("max-ticks", 20000, "abandon a round after this many ticks")
	csvDir := flag.String("csv", "", "directory for rounds.csv (empty = disabled)")
	snapshotPath := flag.String("snapshot", "", "write the best final board to this PNG")
	configPath := flag.String("config", "", "path to config.yaml (geometry, length, food policy)")
	flag.Parse()

	cfg, policy, err := loadSettings(*configPath, *policyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-soak: %v\n", err)
		os.Exit(2)
	}
	w := cfg.Window
	grid, err := core.BuildGrid(w.Width, w.Height, w.Spacing, w.Cell)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-soak: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Soaking %d rounds on a %dx%d grid (%d workers, policy %s, max %d ticks)\n",
		*rounds, grid.HCells, grid.VCells, *workers, policy, *maxTicks)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(grid, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *rounds; i++ {
			jobs <- scenario{seed: *seed + int64(i), policy: policy, length: cfg.Game.InitialLength, maxTicks: *maxTicks}
		}
		close(jobs)
	}()

	start := time.Now()
	session := stats.NewSessionID()
	var (
		all      []scenarioResult
		failures int
	)
	for res := range results {
		if res.err != nil {
			failures++
			fmt.Printf("FAIL seed=%d: %v\n", res.seed, res.err)
			continue
		}
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].summary.Score != all[j].summary.Score {
			return all[i].summary.Score > all[j].summary.Score
		}
		return all[i].seed < all[j].seed
	})

	records := make([]stats.Record, len(all))
	causes := map[game.Cause]int{}
	for i, res := range all {
		causes[res.summary.Cause]++
		records[i] = stats.Record{
			Session: session,
			Round:   i + 1,
			Started: start.UTC().Format(time.RFC3339),
			Score:   res.summary.Score,
			Length:  res.summary.Length,
			Ticks:   res.summary.Ticks,
			Cause:   res.summary.Cause.String(),
			Seed:    res.seed,
		}
	}

	fmt.Printf("\nTop 5 rounds (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d score=%d length=%d ticks=%d cause=%s\n",
			i+1, res.seed, res.summary.Score, res.summary.Length, res.summary.Ticks, res.summary.Cause)
	}

	sum := stats.Summarize(records)
	fmt.Printf("\nRounds=%d failures=%d wall=%d self=%d capped=%d\n",
		sum.Rounds, failures, causes[game.CauseWall], causes[game.CauseSelf], causes[game.CauseAbandoned])
	fmt.Printf("Score mean=%.2f std=%.2f max=%.0f; mean ticks=%.1f\n", sum.MeanScore, sum.StdScore, sum.MaxScore, sum.MeanTicks)

	if *csvDir != "" {
		out, err := stats.NewOutput(*csvDir)
		if err == nil {
			err = out.WriteAll(records)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "snake-soak: %v\n", err)
			os.Exit(1)
		}
	}
	if *snapshotPath != "" && len(all) > 0 {
		if err := snapshot(*snapshotPath, w, grid, all[0].round); err != nil {
			fmt.Fprintf(os.Stderr, "snake-soak: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Best board written to %s\n", *snapshotPath)
	}
	if failures > 0 {
		os.Exit(1)
	}
}
