package config

// Version is the chimec tool version.
const Version = "0.3.1"

// ASTFileExt is the extension the front end gives serialized trees.
const ASTFileExt = ".ast.json"

// ConfigFileNames are the recognized emit config file names, checked in
// order.
var ConfigFileNames = []string{"chime.yaml", "chime.yml"}

// RuntimeGlobal is the fixed module name the runtime support library lives
// under. Special constructors and escaped helpers are emitted as qualified
// references into it.
const RuntimeGlobal = "Chime"
