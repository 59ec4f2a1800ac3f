// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/taxogo/internal/command"
	"github.com/staranto/taxogo/internal/config"
	mylog "github.com/staranto/taxogo/internal/log"
	"github.com/staranto/taxogo/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// mangleArguments expands an argument set from the config file. A "@name"
// argument selects <cmd>.<name>; without one, <cmd>.defaults is used when it
// exists. The set's entries are inserted right after the command so that
// anything given on the command line wins.
func mangleArguments(args []string) []string {
	// Leave root flags and help alone.
	if strings.HasPrefix(args[1], "-") {
		return args
	}
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return args
		}
	}

	set := "defaults"
	rest := make([]string, 0, len(args)-2)
	for _, a := range args[2:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			continue
		}
		rest = append(rest, a)
	}

	// The config has to be read with the command's namespace to resolve the set.
	if _, err := config.Load(args[1]); err != nil {
		log.WithError(err).Debug("no config for argument sets")
	}
	setArgs, _ := config.GetStringSlice(args[1] + "." + set)

	out := append([]string{}, args[:2]...)
	for _, arg := range setArgs {
		out = append(out, strings.Fields(arg)...)
	}
	out = append(out, rest...)

	log.Debugf("set=%s, args=%v", set, out)
	return out
}
