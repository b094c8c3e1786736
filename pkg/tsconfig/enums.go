package tsconfig

import "strings"

// tokenTable maps the uppercase spelling of every known token of a domain
// to its canonical constant.
type tokenTable[T ~string] struct {
	byUpper map[string]T
	tokens  []T
}

func newTokenTable[T ~string](tokens ...T) tokenTable[T] {
	t := tokenTable[T]{byUpper: make(map[string]T, len(tokens)), tokens: tokens}
	for _, tok := range tokens {
		t.byUpper[strings.ToUpper(string(tok))] = tok
	}
	return t
}

func (t tokenTable[T]) lookup(raw string) (T, bool) {
	v, ok := t.byUpper[strings.ToUpper(raw)]
	return v, ok
}

// canonical reports whether v is spelled exactly as one of the known tokens.
func (t tokenTable[T]) canonical(v T) bool {
	known, ok := t.lookup(string(v))
	return ok && known == v
}

func (t tokenTable[T]) names() []string {
	out := make([]string, len(t.tokens))
	for i, tok := range t.tokens {
		out[i] = string(tok)
	}
	return out
}

func (t tokenTable[T]) list() []T {
	return append([]T(nil), t.tokens...)
}

// ============================================================================
// Target
// ============================================================================

// Target is the ECMAScript language level emitted code targets.
//
// The declared constants are the known vocabulary. ParseTarget keeps any
// other token verbatim; such values report Unrecognized.
type Target string

const (
	TargetES3    Target = "ES3"
	TargetES5    Target = "ES5"
	TargetES6    Target = "ES6"
	TargetES2015 Target = "ES2015"
	TargetES7    Target = "ES7"
	TargetES2016 Target = "ES2016"
	TargetES2017 Target = "ES2017"
	TargetES2018 Target = "ES2018"
	TargetES2019 Target = "ES2019"
	TargetES2020 Target = "ES2020"
	TargetES2021 Target = "ES2021"
	TargetES2022 Target = "ES2022"
	TargetES2023 Target = "ES2023"
	TargetES2024 Target = "ES2024"
	TargetESNext Target = "ESNext"
)

var targets = newTokenTable(
	TargetES3, TargetES5, TargetES6, TargetES2015, TargetES7, TargetES2016,
	TargetES2017, TargetES2018, TargetES2019, TargetES2020, TargetES2021,
	TargetES2022, TargetES2023, TargetES2024, TargetESNext,
)

// ParseTarget maps token to its canonical Target, ignoring case. Unknown
// tokens are returned unchanged.
func ParseTarget(token string) Target {
	if t, ok := targets.lookup(token); ok {
		return t
	}
	return Target(token)
}

// Unrecognized reports whether t is outside the known vocabulary.
func (t Target) Unrecognized() bool { return !targets.canonical(t) }

func (t Target) String() string { return string(t) }

// KnownTargets returns the known Target vocabulary.
func KnownTargets() []Target { return targets.list() }

func (t *Target) decodeField(m *mapper, path string, v any) error {
	s, err := stringToken(path, v)
	if err != nil {
		return err
	}
	*t = ParseTarget(s)
	if *t == TargetES3 {
		m.deprecate(path, `target "ES3" is deprecated; use "ES5" or later`)
	}
	return nil
}

// ============================================================================
// Lib
// ============================================================================

// Lib names a bundled library declaration set. Unknown tokens are kept
// verbatim and report Unrecognized.
type Lib string

const (
	LibES5                    Lib = "ES5"
	LibES6                    Lib = "ES6"
	LibES2015                 Lib = "ES2015"
	LibES7                    Lib = "ES7"
	LibES2016                 Lib = "ES2016"
	LibES2017                 Lib = "ES2017"
	LibES2018                 Lib = "ES2018"
	LibES2019                 Lib = "ES2019"
	LibES2020                 Lib = "ES2020"
	LibES2021                 Lib = "ES2021"
	LibES2022                 Lib = "ES2022"
	LibES2023                 Lib = "ES2023"
	LibESNext                 Lib = "ESNext"
	LibDOM                    Lib = "DOM"
	LibDOMIterable            Lib = "DOM.Iterable"
	LibDOMAsyncIterable       Lib = "DOM.AsyncIterable"
	LibWebWorker              Lib = "WebWorker"
	LibWebWorkerImportScripts Lib = "WebWorker.ImportScripts"
	LibWebWorkerIterable      Lib = "WebWorker.Iterable"
	LibScriptHost             Lib = "ScriptHost"
	LibES2015Core             Lib = "ES2015.Core"
	LibES2015Collection       Lib = "ES2015.Collection"
	LibES2015Generator        Lib = "ES2015.Generator"
	LibES2015Iterable         Lib = "ES2015.Iterable"
	LibES2015Promise          Lib = "ES2015.Promise"
	LibES2015Proxy            Lib = "ES2015.Proxy"
	LibES2015Reflect          Lib = "ES2015.Reflect"
	LibES2015Symbol           Lib = "ES2015.Symbol"
	LibES2015SymbolWellKnown  Lib = "ES2015.Symbol.WellKnown"
	LibES2016ArrayInclude     Lib = "ES2016.Array.Include"
	LibES2017Object           Lib = "ES2017.Object"
	LibES2017Intl             Lib = "ES2017.Intl"
	LibES2017SharedMemory     Lib = "ES2017.SharedMemory"
	LibES2017String           Lib = "ES2017.String"
	LibES2017TypedArrays      Lib = "ES2017.TypedArrays"
	LibES2018AsyncGenerator   Lib = "ES2018.AsyncGenerator"
	LibES2018AsyncIterable    Lib = "ES2018.AsyncIterable"
	LibES2018Intl             Lib = "ES2018.Intl"
	LibES2018Promise          Lib = "ES2018.Promise"
	LibES2018RegExp           Lib = "ES2018.RegExp"
	LibES2019Array            Lib = "ES2019.Array"
	LibES2019Object           Lib = "ES2019.Object"
	LibES2019String           Lib = "ES2019.String"
	LibES2019Symbol           Lib = "ES2019.Symbol"
	LibES2020BigInt           Lib = "ES2020.BigInt"
	LibES2020Promise          Lib = "ES2020.Promise"
	LibES2020String           Lib = "ES2020.String"
	LibES2020SymbolWellKnown  Lib = "ES2020.Symbol.WellKnown"
	LibES2020Intl             Lib = "ES2020.Intl"
	LibES2021Promise          Lib = "ES2021.Promise"
	LibES2021String           Lib = "ES2021.String"
	LibES2021WeakRef          Lib = "ES2021.WeakRef"
	LibES2022Array            Lib = "ES2022.Array"
	LibES2022Error            Lib = "ES2022.Error"
	LibES2022Object           Lib = "ES2022.Object"
	LibES2022String           Lib = "ES2022.String"
	LibESNextArray            Lib = "ESNext.Array"
	LibESNextAsyncIterable    Lib = "ESNext.AsyncIterable"
	LibESNextIntl             Lib = "ESNext.Intl"
	LibESNextSymbol           Lib = "ESNext.Symbol"
	LibDecorators             Lib = "Decorators"
	LibDecoratorsLegacy       Lib = "Decorators.Legacy"
)

var libs = newTokenTable(
	LibES5, LibES6, LibES2015, LibES7, LibES2016, LibES2017, LibES2018,
	LibES2019, LibES2020, LibES2021, LibES2022, LibES2023, LibESNext,
	LibDOM, LibDOMIterable, LibDOMAsyncIterable,
	LibWebWorker, LibWebWorkerImportScripts, LibWebWorkerIterable, LibScriptHost,
	LibES2015Core, LibES2015Collection, LibES2015Generator, LibES2015Iterable,
	LibES2015Promise, LibES2015Proxy, LibES2015Reflect, LibES2015Symbol,
	LibES2015SymbolWellKnown, LibES2016ArrayInclude,
	LibES2017Object, LibES2017Intl, LibES2017SharedMemory, LibES2017String, LibES2017TypedArrays,
	LibES2018AsyncGenerator, LibES2018AsyncIterable, LibES2018Intl, LibES2018Promise, LibES2018RegExp,
	LibES2019Array, LibES2019Object, LibES2019String, LibES2019Symbol,
	LibES2020BigInt, LibES2020Promise, LibES2020String, LibES2020SymbolWellKnown, LibES2020Intl,
	LibES2021Promise, LibES2021String, LibES2021WeakRef,
	LibES2022Array, LibES2022Error, LibES2022Object, LibES2022String,
	LibESNextArray, LibESNextAsyncIterable, LibESNextIntl, LibESNextSymbol,
	LibDecorators, LibDecoratorsLegacy,
)

// ParseLib maps token to its canonical Lib, ignoring case. Dots are literal
// separators. Unknown tokens are returned unchanged.
func ParseLib(token string) Lib {
	if l, ok := libs.lookup(token); ok {
		return l
	}
	return Lib(token)
}

// Unrecognized reports whether l is outside the known vocabulary.
func (l Lib) Unrecognized() bool { return !libs.canonical(l) }

func (l Lib) String() string { return string(l) }

// KnownLibs returns the known Lib vocabulary.
func KnownLibs() []Lib { return libs.list() }

func (l *Lib) decodeField(_ *mapper, path string, v any) error {
	s, err := stringToken(path, v)
	if err != nil {
		return err
	}
	*l = ParseLib(s)
	return nil
}

// ============================================================================
// Module
// ============================================================================

// Module is the module system of emitted code. Unknown tokens are kept
// verbatim and report Unrecognized.
type Module string

const (
	ModuleNone     Module = "None"
	ModuleCommonJS Module = "CommonJS"
	ModuleAMD      Module = "AMD"
	ModuleUMD      Module = "UMD"
	ModuleSystem   Module = "System"
	ModuleES6      Module = "ES6"
	ModuleES2015   Module = "ES2015"
	ModuleES2020   Module = "ES2020"
	ModuleES2022   Module = "ES2022"
	ModuleESNext   Module = "ESNext"
	ModuleNode16   Module = "Node16"
	ModuleNode18   Module = "Node18"
	ModuleNodeNext Module = "NodeNext"
	ModulePreserve Module = "Preserve"
)

var modules = newTokenTable(
	ModuleNone, ModuleCommonJS, ModuleAMD, ModuleUMD, ModuleSystem,
	ModuleES6, ModuleES2015, ModuleES2020, ModuleES2022, ModuleESNext,
	ModuleNode16, ModuleNode18, ModuleNodeNext, ModulePreserve,
)

// ParseModule maps token to its canonical Module, ignoring case. Unknown
// tokens are returned unchanged.
func ParseModule(token string) Module {
	if mod, ok := modules.lookup(token); ok {
		return mod
	}
	return Module(token)
}

// Unrecognized reports whether mod is outside the known vocabulary.
func (mod Module) Unrecognized() bool { return !modules.canonical(mod) }

func (mod Module) String() string { return string(mod) }

// KnownModules returns the known Module vocabulary.
func KnownModules() []Module { return modules.list() }

func (mod *Module) decodeField(_ *mapper, path string, v any) error {
	s, err := stringToken(path, v)
	if err != nil {
		return err
	}
	*mod = ParseModule(s)
	return nil
}

// ============================================================================
// ModuleResolution (closed)
// ============================================================================

// ModuleResolution is the module lookup strategy. The vocabulary is closed:
// unknown tokens are rejected.
type ModuleResolution string

const (
	ModuleResolutionClassic  ModuleResolution = "Classic"
	ModuleResolutionNode     ModuleResolution = "Node"
	ModuleResolutionNode10   ModuleResolution = "Node10"
	ModuleResolutionNode16   ModuleResolution = "Node16"
	ModuleResolutionNodeNext ModuleResolution = "NodeNext"
	ModuleResolutionBundler  ModuleResolution = "Bundler"
)

var moduleResolutions = newTokenTable(
	ModuleResolutionClassic, ModuleResolutionNode, ModuleResolutionNode10,
	ModuleResolutionNode16, ModuleResolutionNodeNext, ModuleResolutionBundler,
)

// ParseModuleResolution maps token to its canonical ModuleResolution,
// ignoring case. Unknown tokens yield a CategoryInvalidEnum error.
func ParseModuleResolution(token string) (ModuleResolution, error) {
	return parseModuleResolution("moduleResolution", token)
}

func parseModuleResolution(path, token string) (ModuleResolution, error) {
	if mr, ok := moduleResolutions.lookup(token); ok {
		return mr, nil
	}
	return "", invalidEnum(path, "moduleResolution", token, moduleResolutions.names())
}

func (mr ModuleResolution) String() string { return string(mr) }

// KnownModuleResolutions returns the ModuleResolution vocabulary.
func KnownModuleResolutions() []ModuleResolution { return moduleResolutions.list() }

func (mr *ModuleResolution) decodeField(_ *mapper, path string, v any) error {
	s, err := stringToken(path, v)
	if err != nil {
		return err
	}
	*mr, err = parseModuleResolution(path, s)
	return err
}

// ============================================================================
// Jsx (closed, case-sensitive)
// ============================================================================

// Jsx controls how JSX constructs are emitted. Tokens are compared in their
// exact lowercase-hyphenated form; "React" is not "react".
type Jsx string

const (
	JsxPreserve    Jsx = "preserve"
	JsxReact       Jsx = "react"
	JsxReactNative Jsx = "react-native"
	JsxReactJSX    Jsx = "react-jsx"
	JsxReactJSXDev Jsx = "react-jsxdev"
)

var jsxModes = []Jsx{JsxPreserve, JsxReact, JsxReactNative, JsxReactJSX, JsxReactJSXDev}

// ParseJsx returns the Jsx mode spelled exactly as token, or a
// CategoryInvalidEnum error.
func ParseJsx(token string) (Jsx, error) {
	return parseJsx("jsx", token)
}

func parseJsx(path, token string) (Jsx, error) {
	for _, j := range jsxModes {
		if string(j) == token {
			return j, nil
		}
	}
	names := make([]string, len(jsxModes))
	for i, j := range jsxModes {
		names[i] = string(j)
	}
	return "", invalidEnum(path, "jsx", token, names)
}

func (j Jsx) String() string { return string(j) }

// KnownJsxModes returns the Jsx vocabulary.
func KnownJsxModes() []Jsx { return append([]Jsx(nil), jsxModes...) }

func (j *Jsx) decodeField(_ *mapper, path string, v any) error {
	s, err := stringToken(path, v)
	if err != nil {
		return err
	}
	*j, err = parseJsx(path, s)
	return err
}

// ============================================================================
// Vocabulary listing
// ============================================================================

// Vocabulary describes the known tokens of one enum domain.
type Vocabulary struct {
	Domain string   `json:"domain" yaml:"domain"`
	Tokens []string `json:"tokens" yaml:"tokens"`
	// Open domains accept unknown tokens verbatim.
	Open bool `json:"open" yaml:"open"`
	// CaseSensitive domains compare tokens without case folding.
	CaseSensitive bool `json:"caseSensitive" yaml:"caseSensitive"`
}

// Vocabularies lists every enum domain of compilerOptions.
func Vocabularies() []Vocabulary {
	jsx := make([]string, len(jsxModes))
	for i, j := range jsxModes {
		jsx[i] = string(j)
	}
	return []Vocabulary{
		{Domain: "target", Tokens: targets.names(), Open: true},
		{Domain: "lib", Tokens: libs.names(), Open: true},
		{Domain: "module", Tokens: modules.names(), Open: true},
		{Domain: "moduleResolution", Tokens: moduleResolutions.names()},
		{Domain: "jsx", Tokens: jsx, CaseSensitive: true},
	}
}

func stringToken(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", kindMismatch(path, "string", jsonKind(v))
	}
	return s, nil
}
