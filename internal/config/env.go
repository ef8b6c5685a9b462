package config

import "github.com/joho/godotenv"

// LoadEnv loads environment variables from the given .env files, or from
// ".env" in the working directory when none are given. Variables already set
// in the environment win. A missing file is reported as an os.IsNotExist error.
func LoadEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}
