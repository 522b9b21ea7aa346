// Package config loads formkit settings from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any tagged struct and caches the result
//     per struct type, so each type is parsed once per process.
//   - Settings describes the knobs the form controller and the formcheck CLI
//     understand; LoadSettings is Load for that type.
//
// # Usage
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//	    log.Fatal(err)
//	}
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, err := form.NewFromSettings(tree, settings)
//
// The default .env file in the working directory is loaded once on first use
// when present; a missing file is not an error.
//
// # Testing
//
// ResetCache clears every cached type, and ForceReload re-parses one type
// after the environment changed.
//
// # Errors
//
//   - ErrParsingConfig   – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile  – a .env file passed to LoadEnv could not be read.
//   - ErrConfigNotLoaded – the cache had no value after loading.
//   - ErrNilPointer      – nil pointer passed to Load.
package config
