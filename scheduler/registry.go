package scheduler

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Registry is a Scheduler backed by a YAML file. The file is rewritten in full on every
// change.
type Registry struct {
	file string
}

type registry struct {
	Triggers []Trigger `yaml:"triggers"`
}

func NewRegistry(file string) *Registry {
	return &Registry{
		file: file,
	}
}

func (r *Registry) List() ([]Trigger, error) {
	triggers, err := r.load()
	if err != nil {
		return nil, err
	}

	return triggers, nil
}

func (r *Registry) Delete(trigger Trigger) error {
	triggers, err := r.load()
	if err != nil {
		return err
	}

	list := []Trigger{}
	for _, t := range triggers {
		if t.ID != trigger.ID {
			list = append(list, t)
		}
	}

	if len(list) == len(triggers) {
		return fmt.Errorf("no trigger with ID %v", trigger.ID)
	}

	return r.save(list)
}

func (r *Registry) CreateTimeTrigger(function string, hours uint, args ...string) (Trigger, error) {
	if function == "" {
		return Trigger{}, fmt.Errorf("missing trigger function")
	}

	if hours == 0 {
		return Trigger{}, fmt.Errorf("invalid trigger interval (%vh)", hours)
	}

	triggers, err := r.load()
	if err != nil {
		return Trigger{}, err
	}

	trigger := Trigger{
		ID:       uuid.New().String(),
		Function: function,
		Hours:    hours,
		Args:     append([]string{}, args...),
		Created:  time.Now().UTC().Truncate(time.Second),
	}

	if err := r.save(append(triggers, trigger)); err != nil {
		return Trigger{}, err
	}

	return trigger, nil
}

func (r *Registry) load() ([]Trigger, error) {
	b, err := os.ReadFile(r.file)
	if errors.Is(err, os.ErrNotExist) {
		return []Trigger{}, nil
	} else if err != nil {
		return nil, err
	}

	var list registry
	if err := yaml.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("invalid trigger file %v (%w)", r.file, err)
	}

	if list.Triggers == nil {
		return []Trigger{}, nil
	}

	return list.Triggers, nil
}

func (r *Registry) save(triggers []Trigger) error {
	var b bytes.Buffer

	encoder := yaml.NewEncoder(&b)
	encoder.SetIndent(2)

	if err := encoder.Encode(registry{Triggers: triggers}); err != nil {
		return err
	}

	if err := encoder.Close(); err != nil {
		return err
	}

	dir := filepath.Dir(r.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".triggers-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(b.Bytes()); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), r.file)
}
