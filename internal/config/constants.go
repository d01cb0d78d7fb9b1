package config

// Base application details
const AppName = "reel"
const ConfigDirName = "reel"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "reel.log"

// Engine defaults. DisplayBase is the offset the display adapter adds to the
// internal 0-indexed caret; the conventional "physical" form is 1-indexed.
const DefaultDisplayBase = 1
const DefaultTabWidth = 4
const SystemClipboard = false
