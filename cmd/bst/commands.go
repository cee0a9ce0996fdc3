package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/g-m-twostay/bstree/Render"
	"github.com/g-m-twostay/bstree/Trees"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"
)

var randomFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "count",
		Usage:   "number of random keys when none are given",
		Value:   15,
		EnvVars: []string{"BST_COUNT"},
	},
	&cli.IntFlag{
		Name:    "max",
		Usage:   "random keys are drawn from 1..max",
		Value:   100,
		EnvVars: []string{"BST_MAX"},
	},
	&cli.Int64Flag{
		Name:    "seed",
		Usage:   "random seed, 0 picks one",
		EnvVars: []string{"BST_SEED"},
	},
}

var styleFlag = &cli.StringFlag{
	Name:    "style",
	Usage:   "drawing style: pretty or treeprint",
	Value:   "pretty",
	EnvVars: []string{"BST_STYLE"},
}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "build from random keys, skew the tree, rebalance it and print every step",
	Flags:  append([]cli.Flag{&cli.IntFlag{Name: "skew", Usage: "number of keys above max to insert", Value: 4}, styleFlag}, randomFlags...),
	Action: runDemo,
}

var cmdPrint = &cli.Command{
	Name:      "print",
	Usage:     "draw the tree built from the given keys, or from random ones",
	ArgsUsage: `[<key> ...]`,
	Flags:     append([]cli.Flag{styleFlag}, randomFlags...),
	Action:    runPrint,
}

var cmdOps = &cli.Command{
	Name:      "ops",
	Usage:     "build from keys, then apply add:K, del:K, find:K and rebalance operations in order",
	ArgsUsage: `<key|op> ...`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "order",
			Usage: "traversal order printed after each mutation: in, pre, post or level",
			Value: "in",
		},
	},
	Action: runOps,
}

func randomKeys(cctx *cli.Context) ([]int, error) {
	n, hi := cctx.Int("count"), cctx.Int("max")
	if n < 0 || hi < 1 {
		return nil, fmt.Errorf("need count >= 0 and max >= 1, got %d and %d", n, hi)
	}
	f := gofakeit.New(cctx.Int64("seed"))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = f.IntRange(1, hi)
	}
	return keys, nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("parsing key %q: %w", a, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func draw(w io.Writer, tree *Trees.BSTree[int], style string) error {
	root, ok := tree.Root()
	if !ok {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	switch style {
	case "pretty":
		return Render.Pretty[int](w, root)
	case "treeprint":
		_, err := fmt.Fprint(w, Render.TreePrint[int](root))
		return err
	default:
		return fmt.Errorf("unknown style %q", style)
	}
}

var orderTitles = map[Trees.Order]string{
	Trees.LevelOrder: "Level Order",
	Trees.PreOrder:   "Pre Order",
	Trees.PostOrder:  "Post Order",
	Trees.InOrder:    "In Order",
}

func printOrders(w io.Writer, tree *Trees.BSTree[int]) {
	for _, o := range []Trees.Order{Trees.LevelOrder, Trees.PreOrder, Trees.PostOrder, Trees.InOrder} {
		fmt.Fprintf(w, "%s: %v\n", orderTitles[o], tree.Keys(o))
	}
}

func runDemo(cctx *cli.Context) error {
	w := cctx.App.Writer
	keys, err := randomKeys(cctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Random Array: %v\n", keys)
	tree, err := Trees.New(keys)
	if err != nil {
		return err
	}
	slog.Info("built tree", "keys", len(keys), "size", tree.Size())
	fmt.Fprintf(w, "Balanced: %v\n", tree.Balanced())
	printOrders(w, tree)

	hi := cctx.Int("max")
	for i := 1; i <= cctx.Int("skew"); i++ {
		if !tree.Insert(hi + i) {
			slog.Warn("key already present", "key", hi+i)
		}
	}
	slog.Info("skewed tree", "size", tree.Size(), "height", heightText(tree))
	fmt.Fprintf(w, "Balanced: %v\n", tree.Balanced())

	tree.Rebalance()
	slog.Info("rebalanced", "size", tree.Size(), "height", heightText(tree))
	fmt.Fprintf(w, "Balanced: %v\n", tree.Balanced())
	printOrders(w, tree)
	return draw(w, tree, cctx.String("style"))
}

func runPrint(cctx *cli.Context) error {
	var keys []int
	var err error
	if cctx.Args().Present() {
		keys, err = parseKeys(cctx.Args().Slice())
	} else {
		keys, err = randomKeys(cctx)
	}
	if err != nil {
		return err
	}
	tree, err := Trees.New(keys)
	if err != nil {
		return err
	}
	slog.Debug("built tree", "keys", keys, "size", tree.Size())
	return draw(cctx.App.Writer, tree, cctx.String("style"))
}

// heightText is the tree height, or "none" for an empty tree.
func heightText(tree *Trees.BSTree[int]) string {
	if h, ok := tree.TreeHeight(); ok {
		return strconv.Itoa(h)
	}
	return "none"
}

func runOps(cctx *cli.Context) error {
	w := cctx.App.Writer
	order, err := Trees.ParseOrder(cctx.String("order"))
	if err != nil {
		return err
	}
	args := cctx.Args().Slice()
	n := 0
	for n < len(args) {
		if _, err := strconv.Atoi(args[n]); err != nil {
			break
		}
		n++
	}
	initial, err := parseKeys(args[:n])
	if err != nil {
		return err
	}
	tree, err := Trees.New(initial)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "build: %v\n", tree.Keys(order))
	for _, a := range args[n:] {
		if a == "rebalance" {
			tree.Rebalance()
			fmt.Fprintf(w, "rebalance: %v balanced=%v\n", tree.Keys(order), tree.Balanced())
			continue
		}
		op, arg, ok := strings.Cut(a, ":")
		if !ok {
			op, arg = "add", a
		}
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("parsing operation %q: %w", a, err)
		}
		switch op {
		case "add":
			if !tree.Insert(k) {
				slog.Debug("duplicate key ignored", "key", k)
			}
			fmt.Fprintf(w, "add %d: %v\n", k, tree.Keys(order))
		case "del":
			if !tree.Delete(k) {
				slog.Debug("absent key ignored", "key", k)
			}
			fmt.Fprintf(w, "del %d: %v\n", k, tree.Keys(order))
		case "find":
			node, found := tree.Find(k)
			if !found {
				fmt.Fprintf(w, "find %d: not found\n", k)
				continue
			}
			h, _ := Trees.Height(node)
			d, _ := tree.Depth(node)
			fmt.Fprintf(w, "find %d: height=%d depth=%d\n", k, h, d)
		default:
			return fmt.Errorf("unknown operation %q", op)
		}
	}
	fmt.Fprintf(w, "size=%d height=%s balanced=%v\n", tree.Size(), heightText(tree), tree.Balanced())
	return nil
}
