package theme

import (
	"io/fs"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Manager holds the active theme and tells its observers whenever it
// changes. It is single-writer and main-thread-only: all setters, lookups
// and observer callbacks run on the UI goroutine, so nothing is locked.
type Manager struct {
	currentTheme      Document
	currentThemePath  *Path
	currentThemeIndex int

	bundle fs.FS
	logger *zap.Logger

	observers []subscriber
	nextID    uint64
}

type subscriber struct {
	id uint64
	fn func()
}

type Option func(*Manager)

// WithLogger sets the logger diagnostics are written to.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBundle replaces the built-in theme bundle.
func WithBundle(bundle fs.FS) Option {
	return func(m *Manager) {
		m.bundle = bundle
	}
}

// WithIndex sets the initial theme index without notifying anyone.
func WithIndex(i int) Option {
	return func(m *Manager) {
		m.currentThemeIndex = i
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		bundle: BundleFS(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = defaultLogger()
	}
	m.logger = m.logger.Named("theme")
	return m
}

// warnings only, on stderr
func defaultLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core)
}

func (m *Manager) CurrentTheme() Document {
	return m.currentTheme
}

// CurrentThemePath returns nil until a document has been set.
func (m *Manager) CurrentThemePath() *Path {
	return m.currentThemePath
}

func (m *Manager) CurrentThemeIndex() int {
	return m.currentThemeIndex
}

func (m *Manager) Bundle() fs.FS {
	return m.bundle
}

func (m *Manager) Logger() *zap.Logger {
	return m.logger
}

// SetThemeIndex switches list-literal pickers to the i-th entry. The index
// is not bounds checked; lists shorter than i+1 resolve to nothing.
func (m *Manager) SetThemeIndex(i int) {
	m.currentThemeIndex = i
	m.notify()
}

// SetTheme loads the document called name from path. If it cannot be found
// or decoded a warning is logged and the current theme stays untouched.
func (m *Manager) SetTheme(name string, path Path) {
	file, ok := path.PathFor(m.bundle, name)
	if !ok {
		m.logger.Warn("theme document not found",
			zap.String("op", "SetTheme"),
			zap.String("name", name),
			zap.Stringer("path", path),
		)
		return
	}

	data, err := path.ReadFile(m.bundle, file)
	if err != nil {
		m.logger.Warn("theme document not readable",
			zap.String("op", "SetTheme"),
			zap.String("name", name),
			zap.String("file", file),
			zap.Error(err),
		)
		return
	}

	doc, err := DecodeDocumentFile(data, file)
	if err != nil {
		m.logger.Warn("theme document not decodable",
			zap.String("op", "SetTheme"),
			zap.String("name", name),
			zap.String("file", file),
			zap.Error(err),
		)
		return
	}

	m.SetThemeDocument(doc, path)
}

// SetThemeDocument makes doc the current theme and notifies observers.
func (m *Manager) SetThemeDocument(doc Document, path Path) {
	m.currentTheme = doc
	m.currentThemePath = &path
	m.notify()
}

func (m *Manager) SetThemeFromBundle(name string) {
	m.SetTheme(name, MainBundle())
}

func (m *Manager) SetThemeFromDir(name, dir string) {
	m.SetTheme(name, Sandbox(dir))
}

func (m *Manager) SetThemeDocumentInBundle(doc Document) {
	m.SetThemeDocument(doc, MainBundle())
}

func (m *Manager) SetThemeDocumentInDir(doc Document, dir string) {
	m.SetThemeDocument(doc, Sandbox(dir))
}

// Subscription identifies a registered observer.
type Subscription struct {
	id      uint64
	manager *Manager
}

// Subscribe registers fn to run after every theme change. Observers are
// called synchronously, in registration order, before the setter returns.
func (m *Manager) Subscribe(fn func()) Subscription {
	m.nextID++
	m.observers = append(m.observers, subscriber{id: m.nextID, fn: fn})
	return Subscription{id: m.nextID, manager: m}
}

// Unsubscribe removes the observer. It is safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.manager == nil {
		return
	}
	s.manager.unsubscribe(s.id)
}

func (m *Manager) unsubscribe(id uint64) {
	for i, o := range m.observers {
		if o.id == id {
			m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
			return
		}
	}
}

// Observers returns the number of registered observers.
func (m *Manager) Observers() int {
	return len(m.observers)
}

// iterates a snapshot so observers may unsubscribe while being notified
func (m *Manager) notify() {
	snapshot := make([]subscriber, len(m.observers))
	copy(snapshot, m.observers)
	for _, o := range snapshot {
		o.fn()
	}
}
