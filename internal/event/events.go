package event

import "time"

type CustomerEventPayload struct {
	CustomerID    string    `json:"customerId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	CustomerSince time.Time `json:"customerSince"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type LoanApplicationEventPayload struct {
	CustomerID      string    `json:"customerId"`
	LoanAmount      float64   `json:"loanAmount"`
	LoanPurpose     string    `json:"loanPurpose"`
	ApplicationDate time.Time `json:"applicationDate"`
	Status          string    `json:"status"`
}

type LoanApplicationReceivedEvent struct {
	Timestamp time.Time                   `json:"timestamp"`
	Payload   LoanApplicationEventPayload `json:"payload"`
}
