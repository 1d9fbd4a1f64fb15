package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"homegame-server/internal/config"
)

var env = flag.Bool("env", false, "list the environment variables instead of printing YAML")

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *env {
		if err := envconfig.Usage(config.EnvPrefix, &cfg); err != nil {
			fail(err)
		}

		return
	}

	fmt.Println("# homegame-server defaults, see -env for the matching environment variables")
	if err := yaml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
