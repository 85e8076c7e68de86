package config

// File represents the structure of the config.yaml file.
type File struct {
	Manager     string   `yaml:"manager"`
	Concurrency int      `yaml:"concurrency"`
	StoreDir    string   `yaml:"storeDir"`
	Skip        []string `yaml:"skip"`
	LogFormat   string   `yaml:"logFormat"`
}
