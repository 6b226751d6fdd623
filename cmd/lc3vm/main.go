// Command lc3vm runs one or more LC-3 object images.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/Daste745/lc3/internal/lc3"
	"github.com/Daste745/lc3/internal/term"
)

func main() {
	os.Exit(run())
}

// run executes one VM session and returns the process exit code. All
// cleanup is expressed as defers so raw mode is restored and the
// keyboard adapter is closed on every return path, including the
// halt and fault paths, not just the interrupt path below.
func run() int {
	log.SetFlags(0)

	verbose := flag.Bool("v", false, "print each instruction before executing it")
	flag.Parse()

	images := flag.Args()
	if len(images) == 0 {
		log.Printf("usage: %s [-v] image1 [image2 ...]", os.Args[0])
		return 2
	}

	adapter, err := term.NewAdapter()
	if err != nil {
		log.Print(err)
		return 1
	}
	defer adapter.Close()

	mem := lc3.NewMemory(adapter)
	for _, path := range images {
		if err := mem.LoadImageFile(path); err != nil {
			log.Printf("failed to load image: %s", path)
			return 1
		}
	}

	rawState, err := term.MakeRaw()
	if err != nil {
		log.Print(err)
		return 1
	}
	restoreOnce := func() {
		term.Restore(rawState)
	}
	defer restoreOnce()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		restoreOnce()
		adapter.Close()
		os.Stdout.WriteString("\n")
		os.Exit(130)
	}()

	interp := lc3.NewInterpreter(mem)
	if *verbose {
		interp.Verbose = func(pc, inst uint16) {
			log.Printf("lc3: pc=0x%04X inst=0x%04X %s", pc, inst, lc3.Disassemble(inst))
		}
	}

	err = interp.Run()
	if errors.Is(err, lc3.ErrHalted) {
		return 0
	}
	log.Print(err)
	return 1
}
