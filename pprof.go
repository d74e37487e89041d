package main

import (
	"net/http"
	_ "net/http/pprof"
)

const PprofAddr = "localhost:6060"

func StartPprof() {
	go func() {
		InfoLogger.Printf("initializing pprof on %s", PprofAddr)
		InfoLogger.Print(http.ListenAndServe(PprofAddr, nil))
	}()
}
