package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/P0RTNOY/IronMind/config"
	"github.com/P0RTNOY/IronMind/lib/myhttpclient"
	"github.com/P0RTNOY/IronMind/lib/mypublisher"
	"github.com/P0RTNOY/IronMind/lib/mystore"
	"github.com/P0RTNOY/IronMind/lib/mytime"
	"github.com/P0RTNOY/IronMind/lib/myuuid"
	"github.com/P0RTNOY/IronMind/services/accessoracle"
	"github.com/P0RTNOY/IronMind/services/admin"
	"github.com/P0RTNOY/IronMind/services/auth"
	"github.com/P0RTNOY/IronMind/services/catalog"
	"github.com/P0RTNOY/IronMind/services/checkoutcontext"
	"github.com/P0RTNOY/IronMind/services/contentgate"
	"github.com/P0RTNOY/IronMind/services/ironapi"
	"github.com/P0RTNOY/IronMind/services/reconcile"
	"github.com/P0RTNOY/IronMind/services/toast"
	"github.com/P0RTNOY/IronMind/services/uploader"
)

func main() {
	c := context.Background()
	cfg := config.Load()

	nower := mytime.RealNower{}
	sender := myhttpclient.NewJSONHTTPClient()
	apiClient := ironapi.NewClient(cfg.APIBaseURL, sender)

	publisher, publisherCleanup, err := mypublisher.New(c, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()

	slotStore, slotStoreCleanup, err := mystore.New[checkoutcontext.Slot](c)
	if err != nil {
		log.Fatalf("Error creating checkout-context store: %s", err)
	}
	defer slotStoreCleanup()
	checkouts := checkoutcontext.NewStore(slotStore, nower, cfg.CheckoutContextTTL)

	toastStore, toastStoreCleanup, err := mystore.New[toast.Queue](c)
	if err != nil {
		log.Fatalf("Error creating toast store: %s", err)
	}
	defer toastStoreCleanup()
	toasts := toast.NewBus(toastStore)

	oracle := accessoracle.New(apiClient)
	gate := contentgate.New(cfg.DevAuth)

	router := mux.NewRouter()
	router.Use(traceMiddleware(myuuid.RealUUIDer{}))

	authService := auth.NewWebService(apiClient, cfg.DevAuth)
	authService.RegisterEndpoints(c, router)

	catalogService := catalog.NewWebService(apiClient, apiClient, apiClient, oracle, gate, checkouts, toasts, publisher, nower)
	err = catalogService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering catalog endpoints: %s", err)
	}

	controller := reconcile.NewController(checkouts, apiClient, oracle, mytime.RealSleeper{}, cfg.PollInterval, cfg.PollMaxAttempts)
	reconcileService := reconcile.NewWebService(controller, checkouts, publisher)
	err = reconcileService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout endpoints: %s", err)
	}

	adminService := admin.NewWebService(apiClient, apiClient, apiClient, uploader.New(apiClient, sender), toasts)
	adminService.RegisterEndpoints(c, router)

	startWebServerBlocking(router, cfg.Port)
}

// traceMiddleware makes sure every request carries a trace label, so log
// lines of one request can be correlated even outside Google Cloud.
func traceMiddleware(uuider myuuid.UUIDer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Cloud-Trace-Context") == "" {
				r.Header.Set("X-Cloud-Trace-Context", uuider.Create())
			}
			next.ServeHTTP(w, r)
		})
	}
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
