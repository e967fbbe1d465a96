// Package configx provides layered configuration loading for eggdoc.
//
// # Overview
//
// configx aggregates configuration sources (a YAML or JSON project file,
// prefixed environment variables, command line overrides), merges them
// deterministically, and binds the result into structs with defaults.
//
// # Features
//
//   - Multiple sources with last-wins merge semantics
//   - Nested file mappings flattened into upper-case KEY_SUBKEY form
//   - Type-safe struct binding via env/default tags
//   - Struct validation via go-playground/validator tags
//
// # Usage
//
//	mgr, err := configx.NewManager(ctx, configx.Options{
//		Logger: logger,
//		Sources: configx.LayeredSources(configx.LayerOptions{
//			File:      "eggdoc.yaml",
//			EnvPrefix: "DOXYGEN_",
//			Overrides: flags,
//		}),
//	})
//	if err != nil { return err }
//
//	var cfg Settings
//	if err := mgr.Bind(&cfg); err != nil { return err }
//	overrides := mgr.Prefixed("OPTIONS_")
//
// # Layer
//
// configx depends on core only.
package configx
