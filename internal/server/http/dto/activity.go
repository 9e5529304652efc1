package dto

// ActivityRequest describes the activity payload accepted on create/update.
type ActivityRequest struct {
	ID          int64    `json:"id"`
	Titolo      string   `json:"titolo"`
	Descrizione string   `json:"descrizione"`
	Scadenza    WireTime `json:"scadenza"`
	Stato       string   `json:"stato"`
	IDUser      string   `json:"idUser"`
}

// ActivityResponse describes an activity on the wire.
type ActivityResponse struct {
	ID          int64    `json:"id"`
	Titolo      string   `json:"titolo"`
	Descrizione string   `json:"descrizione"`
	Scadenza    WireTime `json:"scadenza"`
	Stato       string   `json:"stato"`
	IDUser      string   `json:"idUser"`
}
