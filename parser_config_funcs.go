package clop

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	var (
//		color = "red"
//		age   = -1
//		help  bool
//	)
//	parser, err := NewParserWith(
//		WithOption(&color, "-c", "--color", "your favorite color"),
//		WithFlag(&age, "-a", "your age"),
//		WithOption(&help, "-h", "--help", "print help description and exit"),
//		WithHyphenArgError(false))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithOption is a wrapper for Parser.Add
func WithOption(variable any, shortFlag, longFlag, description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.Add(variable, shortFlag, longFlag, description)
	}
}

// WithFlag is a wrapper for Parser.AddFlag which binds variable to a single short or long flag
func WithFlag(variable any, flag, description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddFlag(variable, flag, description)
	}
}

// WithBind is a wrapper for Bind
func WithBind[T Bindable](variable *T, shortFlag, longFlag, description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = Bind(parser, variable, shortFlag, longFlag, description)
	}
}

// WithValue is a wrapper for Parser.AddValue
func WithValue(value Value, shortFlag, longFlag, description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddValue(value, shortFlag, longFlag, description)
	}
}

// WithDoubleHyphen specifies whether "--" ends option processing
func WithDoubleHyphen(interpret bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetDoubleHyphen(interpret)
	}
}

// WithHyphenArgError specifies whether unrecognized '-' prefixed arguments are errors or positional arguments
func WithHyphenArgError(strict bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetHyphenArgError(strict)
	}
}

// WithTerminal replaces the terminal probe used when printing help
func WithTerminal(terminal Terminal) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetTerminal(terminal)
	}
}

// WithRenderer replaces the renderer used when printing help
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetRenderer(renderer)
	}
}
