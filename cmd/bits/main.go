package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bits-codec/bits"
)

func main() {
	var (
		outFormat   = flag.String("out", "eval", "Output format: eval, expr, hex, tree")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		bits.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Usage: bits [-out eval|expr|hex|tree] <hex> [<hex> ...]")
			fmt.Fprintln(os.Stderr, "       bits -i  (interactive mode)")
			fmt.Fprintln(os.Stderr, "       ... | bits  (one transmission per line)")
			os.Exit(1)
		}
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: read stdin: %v\n", err)
			os.Exit(1)
		}
	}

	for _, in := range inputs {
		if err := run(os.Stdout, in, *outFormat); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func run(w io.Writer, hexStr, outFormat string) error {
	p, err := bits.DecodeHexValidate(hexStr)
	if err != nil {
		return err
	}

	switch outFormat {
	case "eval":
		value, err := p.Eval()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, value)
	case "expr":
		expr, err := p.Expression()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, expr)
	case "hex":
		out, err := p.EncodeHex()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	case "tree":
		printTree(w, p, 0)
	default:
		return fmt.Errorf("unknown output format %q", outFormat)
	}
	return nil
}

func printTree(w io.Writer, p *bits.Packet, depth int) {
	indent := strings.Repeat("  ", depth)
	if p.IsLiteral() {
		fmt.Fprintf(w, "%sliteral v%d = %d\n", indent, p.Version, p.Value)
		return
	}
	op, err := p.Op()
	opName := "?"
	if err == nil {
		opName = op.FuncName()
	}
	fmt.Fprintf(w, "%s%s v%d (%s, %d sub-packets)\n", indent, opName, p.Version, p.LengthKind, len(p.Packets))
	for _, sub := range p.Packets {
		printTree(w, sub, depth+1)
	}
}
