package filter

import "sort"

type registry struct {
	configs map[string]Config
}

var _ Registry = (*registry)(nil)

func NewRegistry(configs map[string]Config) Registry {
	copied := make(map[string]Config, len(configs))
	for name, config := range configs {
		config.Name = name
		copied[name] = config
	}

	return &registry{copied}
}

func (r *registry) Has(name string) bool {
	_, found := r.configs[name]
	return found
}

func (r *registry) Get(name string) (Config, error) {
	config, found := r.configs[name]
	if !found {
		return Config{}, ErrUnknownFilter
	}

	return config, nil
}

func (r *registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
