package constants

// Application directory and file names
const (
	AppDirName         = "dc-themer"
	UserConfigFileName = "dc-themer.json"
	StateFileName      = "state.toml"
	LogFileName        = "dc-themer.log"
	CatalogFileName    = "schemes.yaml"
	BackupSuffix       = ".backup"
)

// UserConfigVersion is the schema version of the user configuration file this
// build understands. Bump it on every breaking change of the file layout.
const UserConfigVersion = 1

// Scheme file extensions, also used as keys of the target path map.
const (
	ExtCFG  = "cfg"
	ExtJSON = "json"
	ExtXML  = "xml"
)

// Keys inside the Double Commander configuration files
const (
	DarkModeKey         = "DarkMode"
	DarkModeForced      = "1"
	StylesKey           = "Styles"
	StyleNameKey        = "Name"
	FileColorsKey       = "FileColors"
	XMLConfigVersionKey = "ConfigVersion"
)
