package application

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/pharma-admin/pkg/configuration"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/eventbus"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
	"github.com/iota-uz/pharma-admin/pkg/spotlight"
	"github.com/iota-uz/pharma-admin/pkg/types"
)

// Module plugs a group of screens into the application.
type Module interface {
	Register(app Application) error
	Name() string
}

// MockFunc declares collections on the development backend and, when seed
// is set, fills them with demo records.
type MockFunc func(b *mockapi.Backend, seed bool)

type Application interface {
	Config() *configuration.Configuration
	Logger() *logrus.Logger
	Client() *restclient.Client
	EventPublisher() eventbus.EventBus
	Surface() *crud.Surface
	QuickLinks() *spotlight.QuickLinks
	NavItems() []types.NavigationItem
	RegisterNavItems(items ...types.NavigationItem)
	Screens() []crud.Screen
	Screen(name string) (crud.Screen, bool)
	RegisterScreens(screens ...crud.Screen)
	Mocks() []MockFunc
	RegisterMocks(mocks ...MockFunc)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
}

type ApplicationOptions struct {
	Config    *configuration.Configuration
	Client    *restclient.Client
	EventBus  eventbus.EventBus
	Logger    *logrus.Logger
	Confirmer crud.Confirmer
	Navigator crud.Navigator
}

func New(opts *ApplicationOptions) Application {
	conf := opts.Config
	if conf == nil {
		conf = configuration.Use()
	}
	log := opts.Logger
	if log == nil {
		log = conf.Logger()
	}
	bus := opts.EventBus
	if bus == nil {
		bus = eventbus.NewEventPublisher(log)
	}
	return &application{
		config:         conf,
		logger:         log,
		client:         opts.Client,
		eventPublisher: bus,
		surface:        crud.NewSurface(bus, opts.Confirmer, opts.Navigator, log),
		quickLinks:     &spotlight.QuickLinks{},
		screens:        make(map[string]crud.Screen),
		services:       make(map[reflect.Type]interface{}),
	}
}

// application with a dynamically extendable service registry
type application struct {
	config         *configuration.Configuration
	logger         *logrus.Logger
	client         *restclient.Client
	eventPublisher eventbus.EventBus
	surface        *crud.Surface
	quickLinks     *spotlight.QuickLinks
	navItems       []types.NavigationItem
	screens        map[string]crud.Screen
	mocks          []MockFunc
	services       map[reflect.Type]interface{}
}

func (app *application) Config() *configuration.Configuration {
	return app.config
}

func (app *application) Logger() *logrus.Logger {
	return app.logger
}

func (app *application) Client() *restclient.Client {
	return app.client
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}

func (app *application) Surface() *crud.Surface {
	return app.surface
}

func (app *application) QuickLinks() *spotlight.QuickLinks {
	return app.quickLinks
}

func (app *application) NavItems() []types.NavigationItem {
	return app.navItems
}

func (app *application) RegisterNavItems(items ...types.NavigationItem) {
	app.navItems = append(app.navItems, items...)
}

// Screens returns the registered screens sorted by name.
func (app *application) Screens() []crud.Screen {
	screens := make([]crud.Screen, 0, len(app.screens))
	for _, s := range app.screens {
		screens = append(screens, s)
	}
	sort.Slice(screens, func(i, j int) bool { return screens[i].Name() < screens[j].Name() })
	return screens
}

func (app *application) Screen(name string) (crud.Screen, bool) {
	s, ok := app.screens[name]
	return s, ok
}

func (app *application) RegisterScreens(screens ...crud.Screen) {
	for _, s := range screens {
		app.screens[s.Name()] = s
	}
}

func (app *application) Mocks() []MockFunc {
	return app.mocks
}

func (app *application) RegisterMocks(mocks ...MockFunc) {
	app.mocks = append(app.mocks, mocks...)
}

// RegisterServices registers a new service in the application by its type
func (app *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		app.services[serviceType] = service
	}
}

// Service retrieves a service by its type
func (app *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, exists := app.services[serviceType]
	if !exists {
		panic(fmt.Sprintf("service %s not found", serviceType.Name()))
	}
	return svc
}
