package entities

// ActorRole identifies which party requests a transition.
type ActorRole string

const (
	ActorCustomer ActorRole = "customer"
	ActorCompany  ActorRole = "company"
	// ActorSystem is the payment confirmation flow.
	ActorSystem ActorRole = "system"
)

func (r ActorRole) Valid() bool {
	switch r {
	case ActorCustomer, ActorCompany, ActorSystem:
		return true
	}
	return false
}

type Actor struct {
	Role ActorRole `json:"role"`
	ID   string    `json:"id"`
}

// SystemActor is used when a confirmed transaction drives the transition.
var SystemActor = Actor{Role: ActorSystem, ID: "payment-confirmation"}
