package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"

	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/pkg/profile"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	args := os.Args[1:]
	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath(RootDir() + "/data/CmdServer"))
		defer p.Stop()
	}

	port := 8002
	for _, arg := range args {
		if parsed, err := strconv.ParseInt(arg, 10, 64); err == nil {
			port = int(parsed)
		}
	}

	log.Println("serving at", port)

	err := Wrap(http.ListenAndServe(fmt.Sprintf(":%v", port), newRouter()))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
