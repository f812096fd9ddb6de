package main

import (
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/generic"
)

// Type descriptions of the demo domain.
//
//	class Entity
//	class User extends Entity
//	class Admin extends User
//	class Order extends Entity
//	interface Repository<T extends Entity>
//	class UserRepository implements Repository<User>
//	class OrderRepository implements Repository<Order>
var (
	Entity = generic.NewClass("Entity")
	User   = generic.NewClass("User").Extends(Entity)
	Admin  = generic.NewClass("Admin").Extends(User)
	Order  = generic.NewClass("Order").Extends(Entity)

	Repository = generic.NewInterface("Repository", generic.TypeVar("T", Entity))

	UserRepository  = generic.NewClass("UserRepository").Implements(generic.Parameterize(Repository, User))
	OrderRepository = generic.NewClass("OrderRepository").Implements(generic.Parameterize(Repository, Order))
)

var entities = map[string]*generic.Class{
	"Entity": Entity,
	"User":   User,
	"Admin":  Admin,
	"Order":  Order,
}

// Store is what every demo repository exposes over HTTP.
type Store interface {
	Describe() map[string]any
}

type memoryStore struct {
	entity string
	rows   []string
}

func (s *memoryStore) Describe() map[string]any {
	return map[string]any{"entity": s.entity, "rows": s.rows}
}

// RepositoryProvider binds the demo repositories with their class
// descriptions so they can be injected by declared type.
type RepositoryProvider struct {
	container.BaseProvider
}

func (p *RepositoryProvider) Register(app *container.Container) {
	app.Singleton("users", func(*container.Container) any {
		return &memoryStore{entity: "User", rows: []string{"ada", "grace"}}
	}, container.As(UserRepository))

	app.Singleton("orders", func(*container.Container) any {
		return &memoryStore{entity: "Order", rows: []string{"#1001"}}
	}, container.As(OrderRepository))
}
