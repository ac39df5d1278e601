package charada

import "strconv"

// Charada is a riddle record. Key is the document key in the store and is
// always the decimal form of ID.
type Charada struct {
	Key      string `json:"-" bson:"_id"`
	ID       int64  `json:"id" bson:"id"`
	Pergunta string `json:"pergunta" bson:"pergunta"`
	Resposta string `json:"resposta" bson:"resposta"`
}

// Counter is the singleton control document holding the last issued riddle ID.
type Counter struct {
	Key string `json:"-" bson:"_id"`
	ID  int64  `json:"id" bson:"id"`
}

// CounterKey is the document key of the counter in the control collection.
const CounterKey = "contador"

// KeyFor returns the document key used to store the riddle with the given ID.
func KeyFor(id int64) string {
	return strconv.FormatInt(id, 10)
}

// New builds a riddle keyed by its ID.
func New(id int64, pergunta, resposta string) *Charada {
	return &Charada{Key: KeyFor(id), ID: id, Pergunta: pergunta, Resposta: resposta}
}
