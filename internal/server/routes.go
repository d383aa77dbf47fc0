package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nft_escrow/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/offers", func(r chi.Router) {
				r.Post("/", handler(s.postV1Offers))
				r.Post("/{id}/accept", handler(s.postV1OfferAccept))
				r.Post("/{id}/cancel", handler(s.postV1OfferCancel))
			})

			r.Get("/assets/{nft}/sellers/{seller}", handler(s.getV1AssetSeller))
			r.Get("/sellers/{address}/offers", handler(s.getV1SellerOffers))
			r.Get("/buyers/{address}/offers", handler(s.getV1BuyerOffers))
			r.Get("/fees/quote", handler(s.getV1FeeQuote))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
