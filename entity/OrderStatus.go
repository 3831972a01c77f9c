package entity

// OrderPending is the estado a new order gets when the client sends none.
// Any other value is passed through to the database as given.
const OrderPending = "Pendiente"
