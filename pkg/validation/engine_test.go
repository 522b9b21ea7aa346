package validation_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/validation"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func demoRules() *rules.Tree {
	return rules.NewTree().
		Set("name", rules.Field(rules.Required(), rules.MinLength(5))).
		Set("person", rules.NewTree().
			Set("age", rules.Field(rules.Required(), rules.Message("custom"))).
			Set("name", rules.Field(rules.Required(), rules.MinLength(5))))
}

type translatorStub map[string]string

func (s translatorStub) Translate(_, key string, params map[string]string) (string, bool) {
	tmpl, ok := s[key]
	if !ok {
		return "", false
	}
	return tmpl + " [" + params["name"] + "]", true
}

func TestValidateField(t *testing.T) {
	engine := validation.New(demoRules())

	t.Run("field without rule passes untouched", func(t *testing.T) {
		out := engine.ValidateField("", "nickname")
		assert.True(t, out.Passed)
		assert.False(t, out.Evaluated)
		assert.Empty(t, out.Message)
	})

	t.Run("first failing validator wins", func(t *testing.T) {
		out := engine.ValidateField("ab", "name")
		assert.True(t, out.Evaluated)
		assert.False(t, out.Passed)
		assert.Equal(t, validator.NameMinLength, out.Validator)
		assert.Equal(t, "name min length value is 5", out.Message)
	})

	t.Run("required fails before minLength", func(t *testing.T) {
		out := engine.ValidateField("", "name")
		assert.Equal(t, validator.NameRequired, out.Validator)
		assert.Equal(t, "name is required.", out.Message)
	})

	t.Run("custom message is used verbatim", func(t *testing.T) {
		out := engine.ValidateField("", "person.age")
		assert.False(t, out.Passed)
		assert.Equal(t, "custom", out.Message)
	})

	t.Run("passing value", func(t *testing.T) {
		out := engine.ValidateField("abcde", "person.name")
		assert.True(t, out.Passed)
		assert.True(t, out.Evaluated)
		assert.Equal(t, "person.name", out.Path)
	})
}

func TestValidateField_StopsAtFirstFailure(t *testing.T) {
	var calls []string
	spy := func(name string, result bool) validator.Validator {
		return validator.Validator{
			Name:     name,
			Template: name + " failed",
			Check: func(any, any) bool {
				calls = append(calls, name)
				return result
			},
		}
	}
	registry, err := validator.NewRegistry(spy("first", true), spy("second", false), spy("third", true))
	require.NoError(t, err)

	tree := rules.NewTree().Set("field", rules.Field(
		rules.Rule("first", true),
		rules.Rule("second", true),
		rules.Rule("third", true),
	))
	out := validation.New(tree, validation.WithRegistry(registry)).ValidateField("x", "field")

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "second failed", out.Message)
}

func TestValidateField_UnknownValidators(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	tree := rules.NewTree().
		Set("email", rules.Field(rules.Rule("uniqueEmail", true), rules.Email())).
		Set("note", rules.Field(rules.Rule("andField", "other")))
	engine := validation.New(tree, validation.WithLogger(log))

	assert.Contains(t, buf.String(), "unknown validator ignored")
	assert.Contains(t, buf.String(), "validator=uniqueEmail")
	assert.Contains(t, buf.String(), "validator=andField")

	out := engine.ValidateField("not-an-email", "email")
	assert.False(t, out.Passed)
	assert.Equal(t, validator.NameEmail, out.Validator)

	out = engine.ValidateField("", "note")
	assert.True(t, out.Passed)
	assert.False(t, out.Evaluated)

	buf.Reset()
	engine.SetRules(tree)
	assert.Empty(t, buf.String(), "same tree is not re-reported")
}

func TestValidateField_Labels(t *testing.T) {
	labels := map[string]string{"person.name": "Person name"}
	engine := validation.New(demoRules(), validation.WithLabelResolver(func(path string) (string, bool) {
		l, ok := labels[path]
		return l, ok
	}))

	assert.Equal(t, "Person name min length value is 5", engine.ValidateField("abc", "person.name").Message)
	assert.Equal(t, "name min length value is 5", engine.ValidateField("abc", "name").Message)
}

func TestValidateField_PlaceholdersInCustomMessage(t *testing.T) {
	tree := rules.NewTree().Set("code", rules.Field(rules.MinLength(3), rules.Message("{{name}} needs {{value}}+ chars")))
	out := validation.New(tree).ValidateField("ab", "code")
	assert.Equal(t, "code needs 3+ chars", out.Message)
}

func TestValidateField_Focuser(t *testing.T) {
	var focused []string
	focus := func(path string) { focused = append(focused, path) }

	t.Run("disabled by default", func(t *testing.T) {
		focused = nil
		validation.New(demoRules(), validation.WithFocuser(focus)).ValidateField("", "name")
		assert.Empty(t, focused)
	})

	t.Run("called for failing fields", func(t *testing.T) {
		focused = nil
		engine := validation.New(demoRules(), validation.WithFocuser(focus), validation.WithScrollToField(true))
		engine.ValidateField("", "name")
		engine.ValidateField("abcde", "person.name")
		assert.Equal(t, []string{"name"}, focused)
	})
}

func TestValidateField_Translator(t *testing.T) {
	engine := validation.New(demoRules(), validation.WithTranslator(translatorStub{
		"validation.required": "bắt buộc",
	}, "vi"))

	assert.Equal(t, "bắt buộc [name]", engine.ValidateField("", "name").Message)
	// no translation for minLength falls back to the default template
	assert.Equal(t, "name min length value is 5", engine.ValidateField("ab", "name").Message)
	// custom messages win over translations
	assert.Equal(t, "custom", engine.ValidateField("", "person.age").Message)
}

func TestValidateAll(t *testing.T) {
	engine := validation.New(demoRules())

	t.Run("all fields pass", func(t *testing.T) {
		report := engine.ValidateAll(map[string]any{
			"name":   "abcde",
			"person": map[string]any{"age": "20", "name": "abcde"},
		})
		assert.True(t, report.Passed)
		assert.Len(t, report.Outcomes, 3)
		assert.Empty(t, report.Failed())
	})

	t.Run("aggregate is a logical and", func(t *testing.T) {
		// only the first field fails; the last one passes
		report := engine.ValidateAll(map[string]any{
			"name":   "ab",
			"person": map[string]any{"age": "20", "name": "abcde"},
		})
		assert.False(t, report.Passed)
		assert.Equal(t, map[string]string{"name": "name min length value is 5"}, report.Errors())
	})

	t.Run("every field is evaluated", func(t *testing.T) {
		report := engine.ValidateAll(map[string]any{})
		assert.False(t, report.Passed)
		require.Len(t, report.Failed(), 3)
		assert.Equal(t, []string{"name", "person.age", "person.name"}, []string{
			report.Outcomes[0].Path, report.Outcomes[1].Path, report.Outcomes[2].Path,
		})
	})

	t.Run("nil data", func(t *testing.T) {
		assert.False(t, engine.ValidateAll(nil).Passed)
	})

	t.Run("struct data", func(t *testing.T) {
		type person struct {
			Age  string `form:"age"`
			Name string `form:"name"`
		}
		type demo struct {
			Name   string `form:"name"`
			Person person `form:"person"`
		}
		report := engine.ValidateAll(&demo{Name: "abcde", Person: person{Age: "20", Name: "abcde"}})
		assert.True(t, report.Passed)
	})

	t.Run("no rules", func(t *testing.T) {
		report := validation.New(nil).ValidateAll(map[string]any{"x": 1})
		assert.True(t, report.Passed)
		assert.Empty(t, report.Outcomes)
	})
}

func TestSetRules(t *testing.T) {
	tree := demoRules()
	engine := validation.New(tree)
	flat := engine.Rules()

	engine.SetRules(tree)
	assert.Same(t, flat, engine.Rules())

	other := rules.NewTree().Set("email", rules.Field(rules.Email()))
	engine.SetRules(other)
	assert.Equal(t, []string{"email"}, engine.Rules().Paths())
	assert.True(t, engine.ValidateField("", "name").Passed)
}

func TestEngine_Concurrent(t *testing.T) {
	engine := validation.New(demoRules())
	data := map[string]any{"name": "abcde", "person": map[string]any{"age": "20", "name": "abcde"}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.True(t, engine.ValidateAll(data).Passed)
			}
		}()
	}
	wg.Wait()
}
