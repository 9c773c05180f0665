package schema

// Builder assembles a Schema programmatically. Properties keep the order in
// which they were declared, matching the behavior of document loading.
type Builder struct {
	schema   *Schema
	builders map[string]*PropertyBuilder
}

// NewBuilder creates an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{
		schema:   New(),
		builders: make(map[string]*PropertyBuilder),
	}
}

// Property declares a variable of the given type and returns its builder.
// Declaring an existing name returns the original builder so a definition
// can be extended in several steps.
func (b *Builder) Property(name string, t Type) *PropertyBuilder {
	if pb, ok := b.builders[name]; ok {
		return pb
	}
	pb := &PropertyBuilder{
		name:    name,
		prop:    &Property{Type: t},
		builder: b,
	}
	b.builders[name] = pb
	b.schema.Declare(name, pb.prop)
	return pb
}

// String declares a string variable.
func (b *Builder) String(name string) *PropertyBuilder {
	return b.Property(name, TypeString)
}

// Number declares a floating-point variable.
func (b *Builder) Number(name string) *PropertyBuilder {
	return b.Property(name, TypeNumber)
}

// Integer declares a whole-number variable.
func (b *Builder) Integer(name string) *PropertyBuilder {
	return b.Property(name, TypeInteger)
}

// Boolean declares a boolean variable.
func (b *Builder) Boolean(name string) *PropertyBuilder {
	return b.Property(name, TypeBoolean)
}

// Require marks the given names as required. Names need not be declared;
// an undeclared required name always reports missing unless the environment
// carries a non-empty value for it.
func (b *Builder) Require(names ...string) *Builder {
	for _, name := range names {
		if !b.schema.IsRequired(name) {
			b.schema.Required = append(b.schema.Required, name)
		}
	}
	return b
}

// Build finalizes and returns the schema.
func (b *Builder) Build() (*Schema, error) {
	if err := b.schema.Finalize(); err != nil {
		return nil, err
	}
	return b.schema, nil
}

// PropertyBuilder provides a fluent API for configuring one property.
type PropertyBuilder struct {
	name    string
	prop    *Property
	builder *Builder
}

// Required marks this variable as required.
func (p *PropertyBuilder) Required() *PropertyBuilder {
	p.builder.Require(p.name)
	return p
}

// Default sets the fallback adopted when the variable is absent or empty.
func (p *PropertyBuilder) Default(value any) *PropertyBuilder {
	p.prop.Default = value
	return p
}

// Enum restricts the value to one of the given members.
func (p *PropertyBuilder) Enum(values ...any) *PropertyBuilder {
	p.prop.Enum = values
	return p
}

// Pattern requires string values to match the regular expression.
func (p *PropertyBuilder) Pattern(expr string) *PropertyBuilder {
	p.prop.Pattern = expr
	return p
}

// Min sets the inclusive lower bound for numeric values.
func (p *PropertyBuilder) Min(v float64) *PropertyBuilder {
	p.prop.Minimum = &v
	return p
}

// Max sets the inclusive upper bound for numeric values.
func (p *PropertyBuilder) Max(v float64) *PropertyBuilder {
	p.prop.Maximum = &v
	return p
}

// MinLength sets the inclusive lower bound for string length.
func (p *PropertyBuilder) MinLength(n int) *PropertyBuilder {
	p.prop.MinLength = &n
	return p
}

// MaxLength sets the inclusive upper bound for string length.
func (p *PropertyBuilder) MaxLength(n int) *PropertyBuilder {
	p.prop.MaxLength = &n
	return p
}

// Format names a recognizer (email, uri, uuid, date, time, date-time, or a
// custom registration) that string values must satisfy.
func (p *PropertyBuilder) Format(name string) *PropertyBuilder {
	p.prop.Format = name
	return p
}

// Describe attaches human-readable documentation to the variable.
func (p *PropertyBuilder) Describe(text string) *PropertyBuilder {
	p.prop.Description = text
	return p
}

// Sensitive marks the value for redaction in rendered reports.
func (p *PropertyBuilder) Sensitive() *PropertyBuilder {
	p.prop.Sensitive = true
	return p
}

// String declares a further string variable on the parent builder, allowing
// whole schemas to be written as one chain.
func (p *PropertyBuilder) String(name string) *PropertyBuilder {
	return p.builder.String(name)
}

// Number declares a further floating-point variable on the parent builder.
func (p *PropertyBuilder) Number(name string) *PropertyBuilder {
	return p.builder.Number(name)
}

// Integer declares a further whole-number variable on the parent builder.
func (p *PropertyBuilder) Integer(name string) *PropertyBuilder {
	return p.builder.Integer(name)
}

// Boolean declares a further boolean variable on the parent builder.
func (p *PropertyBuilder) Boolean(name string) *PropertyBuilder {
	return p.builder.Boolean(name)
}

// Build finalizes the parent builder's schema.
func (p *PropertyBuilder) Build() (*Schema, error) {
	return p.builder.Build()
}
