package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/pkg/profile"

	"github.com/bittwiddler1/DNes/internal/cpu"
	"github.com/bittwiddler1/DNes/internal/memory"
)

func main() {
	var (
		imagePath   = flag.String("image", "", "raw memory image to load")
		origin      = flag.Uint("origin", 0x8000, "load address of the image")
		entry       = flag.Uint("entry", 0, "poke the reset vector with this entry point (0 keeps the image's vector)")
		steps       = flag.Uint64("steps", 0, "stop after this many instructions (0 runs until a decode error)")
		trace       = flag.Bool("trace", false, "print every instruction with register state")
		profileMode = flag.Bool("profile", false, "write a CPU profile to the current directory")
	)
	flag.Parse()

	if *imagePath == "" {
		log.Fatalln("no image given, use -image")
	}
	if *profileMode {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	mem, err := memory.NewFromFile(*imagePath, uint16(*origin))
	if err != nil {
		log.Fatalf("couldn't load %s: %s\n", *imagePath, err)
	}
	if *entry != 0 {
		mem.Write8(0xfffc, uint8(*entry))
		mem.Write8(0xfffd, uint8(*entry>>8))
	}

	c := cpu.NewCPU(mem)
	c.PowerOn()

	for executed := uint64(0); *steps == 0 || executed < *steps; executed++ {
		if *trace {
			info := c.DebugInfo()
			text, _ := c.DisassembleAt(info.PC)
			fmt.Printf("%-32s A:%02X X:%02X Y:%02X SP:%02X %s CYC:%d\n",
				text, info.A, info.X, info.Y, info.SP, info.StatusString(), info.Cycles)
		}

		if _, err := c.Step(); err != nil {
			var opErr *cpu.UnknownOpcodeError
			if errors.As(err, &opErr) {
				log.Printf("halting: %s\n", opErr)
				break
			}
			log.Fatalf("step failed: %s\n", err)
		}
	}

	info := c.DebugInfo()
	fmt.Printf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X %s CYC:%d\n",
		info.PC, info.A, info.X, info.Y, info.SP, info.StatusString(), info.Cycles)
}
