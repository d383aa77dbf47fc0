package server

// Server объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей.
type Server struct {
	OfferServer
}

func NewServer(
	offerServer OfferServer,
) Server {
	return Server{
		OfferServer: offerServer,
	}
}
