// SPDX-License-Identifier: Apache-2.0

package whisper

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/joomcode/errorx"
)

// models.json pins the published Whisper model artifacts. The artifact URL
// embeds the expected sha256, which is also used to verify the download.
//
//go:embed models.json
var modelsJSON []byte

// Model describes a published Whisper speech recognition model artifact.
type Model struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
}

type registry struct {
	BaseURL string  `json:"baseUrl"`
	Models  []Model `json:"models"`
}

func loadRegistry() (registry, error) {
	var reg registry
	if err := json.Unmarshal(modelsJSON, &reg); err != nil {
		return registry{}, errorx.InternalError.Wrap(err, "failed to parse embedded model registry")
	}

	return reg, nil
}

// LookupModel returns the registry entry for the named model.
func LookupModel(name string) (*Model, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	for i := range reg.Models {
		if reg.Models[i].Name == name {
			return &reg.Models[i], nil
		}
	}

	return nil, errorx.IllegalArgument.New("unknown Whisper model %q", name)
}

// ModelNames returns the names of all registered models.
func ModelNames() ([]string, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(reg.Models))
	for _, m := range reg.Models {
		names = append(names, m.Name)
	}

	return names, nil
}

// URL returns the download URL of the model artifact.
func (m *Model) URL() (string, error) {
	reg, err := loadRegistry()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s.pt", reg.BaseURL, m.SHA256, m.Name), nil
}

// Filename returns the artifact file name as stored in the models directory.
func (m *Model) Filename() string {
	return m.Name + ".pt"
}
