package mcpclient

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// RunDemo lists the server's tools and then looks up 氢 and atomic number 6
// concurrently, writing everything to w.
func RunDemo(ctx context.Context, cl *Client, w io.Writer) error {
	tools, err := cl.ListTools(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Tools on %s:\n", cl.ServerName())
	for _, tool := range tools {
		fmt.Fprintf(w, "  - %s: %s\n", tool.Name, tool.Description)
	}

	var byName, byPosition Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := cl.GetElement(gctx, "氢")
		byName = res
		return err
	})
	g.Go(func() error {
		res, err := cl.GetElementByPosition(gctx, 6)
		byPosition = res
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(w, "get_element 氢: %s\n", formatResult(byName))
	fmt.Fprintf(w, "get_element_by_position 6: %s\n", formatResult(byPosition))
	return nil
}

func formatResult(res Result) string {
	if res.IsError {
		return "error: " + res.Text
	}
	return res.Text
}
