// Package order contains the sales order aggregate and its lifecycle state
// machine. An order moves from draft through quoting, customer approval,
// the deposit gate, the production pipeline, invoicing and payment, to
// shipping. Cancellation and the three hold states are reachable from any
// non-terminal status.
//
// The aggregate enforces every transition rule itself; callers can only
// mutate an order through its methods, so an order loaded from storage can
// never be driven into an illegal status.
package order
