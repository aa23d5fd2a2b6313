// Command typecache resolves type requests through one cache epoch and
// prints the canonical descriptor for each.
//
// A request is five whitespace-separated fields: basic type, precision,
// qualifier, primary size, secondary size. Requests are taken from the
// command line (one quoted request per argument) or, if none are given,
// one per line from stdin.
//
//	typecache "float highp none 3 3" "float mediump none 3 1"
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vvuk/angle/cache"
	"github.com/vvuk/angle/types"
)

func main() {
	var (
		verbose   = flag.BoolP("verbose", "v", false, "Enable debug logging")
		showStats = flag.Bool("stats", false, "Print cache statistics before teardown")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		cache.SetLogger(logger)
	}

	if err := run(flag.Args(), *showStats); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(requests []string, showStats bool) error {
	if len(requests) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			requests = append(requests, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	c := cache.New()
	defer c.Close()

	for _, req := range requests {
		if err := resolve(c, req); err != nil {
			return fmt.Errorf("request %q: %w", req, err)
		}
	}

	if showStats {
		stats := c.Stats()
		fmt.Printf("entries=%d hits=%d misses=%d\n", stats.Entries, stats.Hits, stats.Misses)
	}
	return nil
}

func resolve(c *cache.Cache, req string) error {
	fields := strings.Fields(req)
	if len(fields) != 5 {
		return fmt.Errorf("want 5 fields (basic precision qualifier primary secondary), got %d", len(fields))
	}

	basic, err := types.ParseBasic(fields[0])
	if err != nil {
		return err
	}
	precision, err := types.ParsePrecision(fields[1])
	if err != nil {
		return err
	}
	qualifier, err := types.ParseQualifier(fields[2])
	if err != nil {
		return err
	}
	primary, err := parseSize(fields[3])
	if err != nil {
		return err
	}
	secondary, err := parseSize(fields[4])
	if err != nil {
		return err
	}
	if secondary > 1 && basic != types.Float {
		return fmt.Errorf("%s cannot be a matrix", basic)
	}
	if basic.IsSampler() && (primary != 1 || secondary != 1) {
		return fmt.Errorf("%s cannot have a size", basic)
	}

	t := c.Get(basic, precision, qualifier, primary, secondary)
	fmt.Printf("%-6s size=%d fingerprint=%016x %s\n", t.MangledName(), t.ObjectSize(), t.Fingerprint(), t)
	return nil
}

func parseSize(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if n < 1 || n > 4 {
		return 0, fmt.Errorf("size %d out of range 1..4", n)
	}
	return uint8(n), nil
}
