// Package config loads vmini.yaml, the CLI configuration file.
//
// # Configuration File Structure
//
//	app: counter
//	data: data/counter.yaml
//	watch: true
//	server:
//	  addr: ":8080"
//	  title: Counter
//	  metrics: true
//	snapshot:
//	  out: s3://my-bucket/pages
//	  region: eu-west-1
//	log:
//	  level: debug
//
// Relative paths are resolved against the directory holding the file.
// Command-line flags override file values.
//
// # Usage
//
//	cfg, err := config.LoadOptional(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println("App:", cfg.App)
package config
