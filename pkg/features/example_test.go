package features_test

import (
	"fmt"

	"github.com/featgate/featgate/pkg/features"
)

func ExampleParse() {
	raw := map[string]any{
		"default":  []any{"json", "logging"},
		"optional": []any{"metrics"},
	}

	state, err := features.Parse(raw, "myapp", nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, name := range state.DeclaredNames() {
		status := "disabled"
		if state.IsEnabled(name) {
			status = "enabled"
		}
		fmt.Printf("%s: %s\n", name, status)
	}
	// Output:
	// json: enabled
	// logging: enabled
	// metrics: disabled
}

func ExampleResolve() {
	decl := features.Declaration{
		Default:  []string{"json", "logging"},
		Optional: []string{"metrics"},
	}

	// The consumer asked for metrics and opted out of the defaults.
	resolved, err := features.Resolve("libjson", []string{"metrics"}, false, decl)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("enabled:", resolved.Enabled)
	fmt.Println("disabled:", resolved.Disabled)
	// Output:
	// enabled: [metrics]
	// disabled: [json logging]
}

func ExampleShouldInclude() {
	state := features.NewState(features.Declaration{
		Default:  []string{"json"},
		Optional: []string{"metrics"},
	}, "myapp", nil)

	fmt.Println(features.ShouldInclude(state, []string{"metrics", "json"}))
	fmt.Println(features.ShouldInclude(state, []string{"metrics"}))
	fmt.Println(features.ShouldInclude(state, nil))
	// Output:
	// true
	// false
	// true
}
