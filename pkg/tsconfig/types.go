package tsconfig

// Document is a parsed tsconfig.json.
//
// Every field is optional. A nil field was absent (or null) in the input; a
// non-nil empty slice was present and empty.
type Document struct {
	// Exclude lists patterns skipped when resolving Include.
	Exclude []string `json:"exclude,omitzero"`
	// Extends names another configuration to inherit from. It is captured
	// verbatim and never dereferenced here.
	Extends *string `json:"extends,omitempty"`
	// Files is an allowlist of input files.
	Files []string `json:"files,omitzero"`
	// Include lists patterns of input files, relative to the document.
	Include []string `json:"include,omitzero"`
	// References lists project references, or carries a bare flag.
	References *References `json:"references,omitempty"`
	// TypeAcquisition configures automatic type acquisition.
	TypeAcquisition *TypeAcquisition `json:"typeAcquisition,omitempty"`
	// CompilerOptions holds the compilerOptions object.
	CompilerOptions *CompilerOptions `json:"compilerOptions,omitempty"`
}

// CompilerOptions is the flat bag of compiler settings. No cross-field
// constraints are enforced.
//
// Fields tagged `deprecated` are still mapped; their use is reported through
// Result.Deprecations.
type CompilerOptions struct {
	// Language and environment
	Target                  *Target  `json:"target,omitempty"`
	Lib                     []Lib    `json:"lib,omitzero"`
	Jsx                     *Jsx     `json:"jsx,omitempty"`
	JsxFactory              *string  `json:"jsxFactory,omitempty"`
	JsxFragmentFactory      *string  `json:"jsxFragmentFactory,omitempty"`
	JsxImportSource         *string  `json:"jsxImportSource,omitempty"`
	ReactNamespace          *string  `json:"reactNamespace,omitempty"`
	NoLib                   *bool    `json:"noLib,omitempty"`
	UseDefineForClassFields *bool    `json:"useDefineForClassFields,omitempty"`
	ExperimentalDecorators  *bool    `json:"experimentalDecorators,omitempty"`
	EmitDecoratorMetadata   *bool    `json:"emitDecoratorMetadata,omitempty"`
	ModuleDetection         *string  `json:"moduleDetection,omitempty"`
	Plugins                 []any    `json:"plugins,omitzero"`
	Types                   []string `json:"types,omitzero"`
	TypeRoots               []string `json:"typeRoots,omitzero"`

	// Modules
	Module                     *Module             `json:"module,omitempty"`
	ModuleResolution           *ModuleResolution   `json:"moduleResolution,omitempty"`
	BaseURL                    *string             `json:"baseUrl,omitempty"`
	Paths                      map[string][]string `json:"paths,omitzero"`
	RootDir                    *string             `json:"rootDir,omitempty"`
	RootDirs                   []string            `json:"rootDirs,omitzero"`
	ModuleSuffixes             []string            `json:"moduleSuffixes,omitzero"`
	CustomConditions           []string            `json:"customConditions,omitzero"`
	AllowArbitraryExtensions   *bool               `json:"allowArbitraryExtensions,omitempty"`
	AllowImportingTsExtensions *bool               `json:"allowImportingTsExtensions,omitempty"`
	AllowUmdGlobalAccess       *bool               `json:"allowUmdGlobalAccess,omitempty"`
	ResolveJSONModule          *bool               `json:"resolveJsonModule,omitempty"`
	ResolvePackageJSONExports  *bool               `json:"resolvePackageJsonExports,omitempty"`
	ResolvePackageJSONImports  *bool               `json:"resolvePackageJsonImports,omitempty"`
	NoResolve                  *bool               `json:"noResolve,omitempty"`
	AllowJs                    *bool               `json:"allowJs,omitempty"`
	CheckJs                    *bool               `json:"checkJs,omitempty"`

	// Emit
	Declaration         *bool   `json:"declaration,omitempty"`
	DeclarationDir      *string `json:"declarationDir,omitempty"`
	DeclarationMap      *bool   `json:"declarationMap,omitempty"`
	DownlevelIteration  *bool   `json:"downlevelIteration,omitempty"`
	EmitBOM             *bool   `json:"emitBOM,omitempty"`
	EmitDeclarationOnly *bool   `json:"emitDeclarationOnly,omitempty"`
	ImportHelpers       *bool   `json:"importHelpers,omitempty"`
	InlineSourceMap     *bool   `json:"inlineSourceMap,omitempty"`
	InlineSources       *bool   `json:"inlineSources,omitempty"`
	MapRoot             *string `json:"mapRoot,omitempty"`
	NewLine             *string `json:"newLine,omitempty"`
	NoEmit              *bool   `json:"noEmit,omitempty"`
	NoEmitHelpers       *bool   `json:"noEmitHelpers,omitempty"`
	NoEmitOnError       *bool   `json:"noEmitOnError,omitempty"`
	OutDir              *string `json:"outDir,omitempty"`
	OutFile             *string `json:"outFile,omitempty"`
	PreserveConstEnums  *bool   `json:"preserveConstEnums,omitempty"`
	RemoveComments      *bool   `json:"removeComments,omitempty"`
	SourceMap           *bool   `json:"sourceMap,omitempty"`
	SourceRoot          *string `json:"sourceRoot,omitempty"`
	StripInternal       *bool   `json:"stripInternal,omitempty"`

	// Interop constraints
	AllowSyntheticDefaultImports     *bool `json:"allowSyntheticDefaultImports,omitempty"`
	ESModuleInterop                  *bool `json:"esModuleInterop,omitempty"`
	ForceConsistentCasingInFileNames *bool `json:"forceConsistentCasingInFileNames,omitempty"`
	IsolatedModules                  *bool `json:"isolatedModules,omitempty"`
	IsolatedDeclarations             *bool `json:"isolatedDeclarations,omitempty"`
	PreserveSymlinks                 *bool `json:"preserveSymlinks,omitempty"`
	VerbatimModuleSyntax             *bool `json:"verbatimModuleSyntax,omitempty"`

	// Type checking
	Strict                             *bool `json:"strict,omitempty"`
	AlwaysStrict                       *bool `json:"alwaysStrict,omitempty"`
	NoImplicitAny                      *bool `json:"noImplicitAny,omitempty"`
	NoImplicitThis                     *bool `json:"noImplicitThis,omitempty"`
	StrictBindCallApply                *bool `json:"strictBindCallApply,omitempty"`
	StrictFunctionTypes                *bool `json:"strictFunctionTypes,omitempty"`
	StrictNullChecks                   *bool `json:"strictNullChecks,omitempty"`
	StrictPropertyInitialization       *bool `json:"strictPropertyInitialization,omitempty"`
	UseUnknownInCatchVariables         *bool `json:"useUnknownInCatchVariables,omitempty"`
	ExactOptionalPropertyTypes         *bool `json:"exactOptionalPropertyTypes,omitempty"`
	NoFallthroughCasesInSwitch         *bool `json:"noFallthroughCasesInSwitch,omitempty"`
	NoImplicitOverride                 *bool `json:"noImplicitOverride,omitempty"`
	NoImplicitReturns                  *bool `json:"noImplicitReturns,omitempty"`
	NoPropertyAccessFromIndexSignature *bool `json:"noPropertyAccessFromIndexSignature,omitempty"`
	NoUncheckedIndexedAccess           *bool `json:"noUncheckedIndexedAccess,omitempty"`
	NoUnusedLocals                     *bool `json:"noUnusedLocals,omitempty"`
	NoUnusedParameters                 *bool `json:"noUnusedParameters,omitempty"`
	AllowUnreachableCode               *bool `json:"allowUnreachableCode,omitempty"`
	AllowUnusedLabels                  *bool `json:"allowUnusedLabels,omitempty"`

	// Completeness
	SkipDefaultLibCheck *bool `json:"skipDefaultLibCheck,omitempty"`
	SkipLibCheck        *bool `json:"skipLibCheck,omitempty"`

	// Projects
	Composite                               *bool   `json:"composite,omitempty"`
	Incremental                             *bool   `json:"incremental,omitempty"`
	TsBuildInfoFile                         *string `json:"tsBuildInfoFile,omitempty"`
	DisableReferencedProjectLoad            *bool   `json:"disableReferencedProjectLoad,omitempty"`
	DisableSolutionSearching                *bool   `json:"disableSolutionSearching,omitempty"`
	DisableSourceOfProjectReferenceRedirect *bool   `json:"disableSourceOfProjectReferenceRedirect,omitempty"`

	// Output formatting and diagnostics
	NoErrorTruncation   *bool `json:"noErrorTruncation,omitempty"`
	Pretty              *bool `json:"pretty,omitempty"`
	ListFiles           *bool `json:"listFiles,omitempty"`
	ListEmittedFiles    *bool `json:"listEmittedFiles,omitempty"`
	TraceResolution     *bool `json:"traceResolution,omitempty"`
	ExtendedDiagnostics *bool `json:"extendedDiagnostics,omitempty"`

	// Deprecated
	Charset                        *string `json:"charset,omitempty" deprecated:"removed in TypeScript 5.5; files are always read as UTF-8"`
	KeyofStringsOnly               *bool   `json:"keyofStringsOnly,omitempty" deprecated:"removed in TypeScript 5.5"`
	NoImplicitUseStrict            *bool   `json:"noImplicitUseStrict,omitempty" deprecated:"removed in TypeScript 5.5"`
	NoStrictGenericChecks          *bool   `json:"noStrictGenericChecks,omitempty" deprecated:"removed in TypeScript 5.5"`
	Out                            *string `json:"out,omitempty" deprecated:"use outFile instead"`
	SuppressExcessPropertyErrors   *bool   `json:"suppressExcessPropertyErrors,omitempty" deprecated:"removed in TypeScript 5.5"`
	SuppressImplicitAnyIndexErrors *bool   `json:"suppressImplicitAnyIndexErrors,omitempty" deprecated:"removed in TypeScript 5.5"`
	ImportsNotUsedAsValues         *string `json:"importsNotUsedAsValues,omitempty" deprecated:"use verbatimModuleSyntax instead"`
	PreserveValueImports           *bool   `json:"preserveValueImports,omitempty" deprecated:"use verbatimModuleSyntax instead"`
}

// Reference is one project reference.
type Reference struct {
	// Path points at a referenced project directory or its tsconfig file.
	Path string `json:"path" validate:"required"`
	// Prepend is deprecated and only meaningful with outFile.
	Prepend *bool `json:"prepend,omitempty" deprecated:"removed in TypeScript 5.5"`
}

// TypeAcquisitionOptions is the object form of typeAcquisition.
type TypeAcquisitionOptions struct {
	Enable                              bool     `json:"enable"`
	Include                             []string `json:"include,omitzero"`
	Exclude                             []string `json:"exclude,omitzero"`
	DisableFilenameBasedTypeAcquisition *bool    `json:"disableFilenameBasedTypeAcquisition,omitempty"`
}

// Deprecation records the use of an obsolete field or token.
type Deprecation struct {
	// Field is the dotted path of the field, e.g. "compilerOptions.out".
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}
