// Command formcheck validates a data document against a rules document and
// prints the resulting error tree as JSON.
//
//	formcheck --rules rules.yaml --data data.json [--field person.age] [--lang vi] [--messages dir]
//
// Exit status is 0 when the data passes, 1 when validation fails and 2 on
// usage or load errors. Settings not given as flags come from FORMKIT_*
// environment variables.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
