package main

import "fmt"

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Addr
	}

	fmt.Fprintf(deps.Stdout, "Serving previews on http://%s\n", addr)
	return deps.Server.ListenAndServe(deps.Ctx, addr)
}
