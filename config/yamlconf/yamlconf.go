/*
Package yamlconf implements a schuko.Configuration read from YAML.

Nested mappings are flattened to dotted keys, i.e.

    css:
      user-agent-default-css: /usr/share/styleres

is visible as key "css.user-agent-default-css". Sequences of scalars are
joined with commas.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package yamlconf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/npillmayer/schuko"
)

// Defaults are filled in by InitDefaults for keys not present in the YAML
// source.
var Defaults = map[string]interface{}{
	"tracing.adapter": "nop",
	"tracing.level":   "Error",
}

// Conf is a configuration with flattened keys.
type Conf struct {
	values map[string]interface{}
}

var _ schuko.Configuration = (*Conf)(nil)

// Load reads a YAML document from r. An empty document yields an empty
// configuration.
func Load(r io.Reader) (*Conf, error) {
	var doc map[string]interface{}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	c := &Conf{values: make(map[string]interface{})}
	flatten("", doc, c.values)
	return c, nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	return Load(bytes.NewReader(data))
}

func flatten(prefix string, m map[string]interface{}, into map[string]interface{}) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]interface{}:
			flatten(key, x, into)
		case []interface{}:
			s := make([]string, len(x))
			for i, item := range x {
				s[i] = fmt.Sprintf("%v", item)
			}
			into[key] = strings.Join(s, ",")
		default:
			into[key] = v
		}
	}
}

// Set overrides the value for key.
func (c *Conf) Set(key string, value interface{}) {
	if c.values == nil {
		c.values = make(map[string]interface{})
	}
	c.values[key] = value
}

// Len returns the number of keys set.
func (c *Conf) Len() int {
	return len(c.values)
}

// InitDefaults is part of interface schuko.Configuration.
func (c *Conf) InitDefaults() {
	for k, v := range Defaults {
		if !c.IsSet(k) {
			c.Set(k, v)
		}
	}
}

// IsSet is part of interface schuko.Configuration.
func (c *Conf) IsSet(key string) bool {
	_, found := c.values[key]
	return found
}

// GetString is part of interface schuko.Configuration.
func (c *Conf) GetString(key string) string {
	v, found := c.values[key]
	if !found || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// GetInt is part of interface schuko.Configuration.
func (c *Conf) GetInt(key string) int {
	switch x := c.values[key].(type) {
	case int:
		return x
	case float64:
		return int(x)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(x))
		return n
	}
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c *Conf) GetBool(key string) bool {
	switch x := c.values[key].(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	case int:
		return x != 0
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration. It is always false.
func (c *Conf) IsInteractive() bool {
	return false
}
