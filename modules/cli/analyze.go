package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/lkarlslund/aclhound/modules/aclanalyze"
	"github.com/lkarlslund/aclhound/modules/ui"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/cobra"
)

var (
	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Extract control relationships from dumped security descriptors",
	}

	input   = analyzeCmd.Flags().String("input", "", "NDJSON dump of objects with base64 encoded security descriptors (stdin if empty, lz4 decompressed if suffixed .lz4)")
	output  = analyzeCmd.Flags().String("output", "", "File to write relation NDJSON to (stdout if empty)")
	workers = analyzeCmd.Flags().Int("workers", 0, "Parallel workers (0 = one per core)")
)

func init() {
	analyzeCmd.RunE = runAnalyze
	Root.AddCommand(analyzeCmd)
}

// One input line per directory entry, as dumped by a collector.
type rawEntry struct {
	ObjectIdentifier   string `json:"ObjectIdentifier"`
	ObjectClass        string `json:"ObjectClass"`
	SecurityDescriptor []byte `json:"SecurityDescriptor"`
}

// One output line per successfully evaluated entry.
type entryRelations struct {
	ObjectIdentifier string                `json:"ObjectIdentifier"`
	Relations        []aclanalyze.Relation `json:"Relations"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func runAnalyze(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if *input != "" {
		infile, err := os.Open(*input)
		if err != nil {
			return err
		}
		defer infile.Close()
		in = infile
		if strings.HasSuffix(*input, ".lz4") {
			in = lz4.NewReader(infile)
		}
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		outfile, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer outfile.Close()
		out = outfile
	}

	pool := aclanalyze.NewPool(*workers)

	var failed int
	var writerdone sync.WaitGroup
	writerdone.Add(1)
	go func() {
		defer writerdone.Done()
		bufout := bufio.NewWriter(out)
		defer bufout.Flush()
		enc := json.NewEncoder(bufout)
		for result := range pool.Results() {
			if result.Err != nil {
				ui.Warn().Msgf("Skipping %v: %v", result.ID, result.Err)
				failed++
				continue
			}
			if err := enc.Encode(entryRelations{
				ObjectIdentifier: result.ID,
				Relations:        result.Relations,
			}); err != nil {
				ui.Error().Msgf("Writing relations for %v: %v", result.ID, err)
			}
		}
	}()

	var submitted int
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry rawEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			ui.Warn().Msgf("Skipping undecodable input line: %v", err)
			continue
		}
		pool.Submit(aclanalyze.Task{
			ID:         entry.ObjectIdentifier,
			Class:      aclanalyze.ObjectClass(entry.ObjectClass),
			Descriptor: entry.SecurityDescriptor,
		})
		submitted++
	}
	pool.Close()
	writerdone.Wait()

	ui.Info().Msgf("Evaluated %v objects, %v malformed", submitted, failed)
	return scanner.Err()
}
