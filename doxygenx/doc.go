// Package doxygenx generates doxygen configuration files and runs doxygen.
//
// Overview:
//   - Responsibility: Map typed option values to a KEY = VALUE configuration
//     file, start doxygen with it, relay its output to the build log
//   - Key Types: Option (registry entry), Values (overrides), Generator
//     (emitter), Runner (process), Report (the full generation step)
//   - Concurrency Model: Synchronous and blocking; a Values set is not safe
//     for concurrent mutation
//   - Error Semantics: *errors.E with CodeConfigBuild, CodeLaunch or
//     CodeGeneration; CodeInvalidArgument for bad option keys and values
//   - Performance Notes: The configuration is rendered into memory before it
//     is written; process output is fully buffered
//
// Every registered option is written exactly once, in declaration order,
// as a description comment, a line with the key padded to 22 columns, and a
// blank line. Unset options take their registry default. Blank string
// overrides also take the default. Quoted strings are wrapped in double
// quotes after the default is substituted.
//
// Usage:
//
//	values := doxygenx.NewValues()
//	_ = values.SetString("PROJECT_NAME", "eggdoc")
//	_ = values.SetInt("TAB_SIZE", 4)
//
//	report := doxygenx.NewReport(doxygenx.Settings{
//		BaseDir:   "/src/project",
//		OutputDir: "target/site/doxygen",
//	}, values, logger)
//	report.Toolchain = doxygenx.PathToolchain{}
//	outcome, err := report.Generate(ctx)
package doxygenx
