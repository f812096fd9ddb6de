package container_test

import (
	"github.com/km-arc/go-inject/framework/generic"
)

// fixture is a small repository domain shared by the tests.
//
//	class Entity
//	class User extends Entity
//	class Admin extends User
//	class Order extends Entity
//	interface Repository<T extends Entity>
//	interface Cache<K>
//	class UserRepository implements Repository<User>
//	class AdminRepository implements Repository<Admin>
//	class OrderRepository implements Repository<Order>
//	class CachedUserRepository extends UserRepository implements Cache<User>
type fixture struct {
	Entity *generic.Class
	User   *generic.Class
	Admin  *generic.Class
	Order  *generic.Class

	Repository *generic.Class
	Cache      *generic.Class

	UserRepository       *generic.Class
	AdminRepository      *generic.Class
	OrderRepository      *generic.Class
	CachedUserRepository *generic.Class
}

func newFixture() *fixture {
	f := &fixture{}

	f.Entity = generic.NewClass("Entity")
	f.User = generic.NewClass("User").Extends(f.Entity)
	f.Admin = generic.NewClass("Admin").Extends(f.User)
	f.Order = generic.NewClass("Order").Extends(f.Entity)

	f.Repository = generic.NewInterface("Repository", generic.TypeVar("T", f.Entity))
	f.Cache = generic.NewInterface("Cache", generic.TypeVar("K"))

	f.UserRepository = generic.NewClass("UserRepository").Implements(f.repositoryOf(f.User))
	f.AdminRepository = generic.NewClass("AdminRepository").Implements(f.repositoryOf(f.Admin))
	f.OrderRepository = generic.NewClass("OrderRepository").Implements(f.repositoryOf(f.Order))
	f.CachedUserRepository = generic.NewClass("CachedUserRepository").
		Extends(f.UserRepository).
		Implements(f.cacheOf(f.User))

	return f
}

func (f *fixture) repositoryOf(arg generic.Type) *generic.Parameterized {
	return generic.Parameterize(f.Repository, arg)
}

func (f *fixture) cacheOf(arg generic.Type) *generic.Parameterized {
	return generic.Parameterize(f.Cache, arg)
}

// Go values standing in for the classes above.

type userRepository struct{ name string }

type orderRepository struct{ name string }

type adminRepository struct{ name string }

// alien is a type expression outside the known variants.
type alien struct{ generic.Type }

func (alien) String() string { return "alien" }
