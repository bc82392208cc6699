// Package exception provides the DeliveryException entity, the record kept
// when something goes wrong with an order.
//
// Exceptions are written in two places: rejecting an order records a
// Rejected exception atomically with the status change, and the overdue
// delivery watchdog records a LateDelivery exception for orders in transit
// past their promised time. Exceptions start unresolved and keep their
// resolution flag across restarts.
package exception
