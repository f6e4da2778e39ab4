package domain

import "time"

type Agent struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Agent) Validate() error {
	return ValidateEmail(a.Email)
}

type Office struct {
	ID        int       `json:"id"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Office) Validate() error {
	return ValidateEmail(o.Email)
}

type Buyer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Buyer) Validate() error {
	return ValidateEmail(b.Email)
}

type Seller struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Seller) Validate() error {
	return ValidateEmail(s.Email)
}

// AgentOffice representa o vínculo N:N entre corretores e escritórios.
// Nenhum dos lados é dono da relação; é apenas uma tabela associativa
// com duas chaves estrangeiras.
type AgentOffice struct {
	AgentID  int `json:"agent_id"`
	OfficeID int `json:"office_id"`
}
