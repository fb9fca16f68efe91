// Package config provides configuration management for the xmllint CLI.
//
// # Configuration File
//
// The project file is .xmllint.yaml, searched in the current directory and
// then in the user config directory (~/.config/xmllint on Linux):
//
//	root: .
//	xsds_path: schemas
//	xmls_path: messages
//	report_path: build/reports   # optional
//	workers: 0                   # 0 means one per CPU
//	log_format: text
//
// Every key can be overridden from the environment with the XMLLINT_
// prefix, e.g. XMLLINT_XSDS_PATH. A .env file in the working directory is
// loaded first and never overrides variables that are already set.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
