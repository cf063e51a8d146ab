package config

import (
	"log"
	"os"
)

func Logger() {
	log.SetOutput(os.Stdout)
	log.SetPrefix("[pipeline] ")
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
