package console

import (
	"errors"
	"fmt"
	"path/filepath"

	survey "github.com/AlecAivazis/survey/v2"

	"github.com/gopak/sift/internal/assets"
)

// Confirmer asks a yes/no question.
type Confirmer func(message string) (bool, error)

// SurveyConfirm prompts on the terminal, defaulting to no.
func SurveyConfirm(message string) (bool, error) {
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// WriteDefaultConfig writes the default config.yaml into dir. An existing
// file is replaced only if yes is set or confirm agrees. It returns the path
// written, or "" when the user declined.
func WriteDefaultConfig(dir string, yes bool, confirm Confirmer) (string, error) {
	p := filepath.Join(dir, assets.ConfigFileName)
	wrote, err := assets.WriteDefaultConfigIfMissing(dir)
	if err != nil {
		return "", err
	}
	if wrote {
		return p, nil
	}
	if !yes {
		if confirm == nil {
			return "", errors.New("config exists and no confirmation available")
		}
		ok, err := confirm(messageOverwriteConfirm(p))
		if err != nil {
			return "", err
		}
		if !ok {
			return "", nil
		}
	}
	if err := assets.WriteDefaultConfig(dir); err != nil {
		return "", err
	}
	return p, nil
}

func messageOverwriteConfirm(path string) string {
	return fmt.Sprintf("Overwrite %s?", path)
}
