package cmd

/*
Copyright © 2019 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02T15:04:05"

type parameters struct {
	FromTimeStampParam time.Time `json:"fromTimeStampParam"`
	ToTimeStampParam   time.Time `json:"toTimeStampParam"`
}

type response struct {
	Parameters parameters     `json:"parameters"`
	NbApproach int            `json:"nbApproach"`
	Data       []app.Approach `json:"data"`
}

// server answers the read-only web API. searchSvc is nil when the sinker
// keeps no searchable history.
type server struct {
	log          *logrus.Logger
	exportPath   string
	searchSvc    app.Service
	searchParams interface{}
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the closest approach export over HTTP",
	Long: `The HTTP Rest API exposes the web export written by the start command and,
	with a DB, FILE or BOLT sinker, a search over past closest approaches.`,
	Run: func(cmd *cobra.Command, args []string) {

		// Initialize config
		initConfig(cmd)

		s := &server{
			log:        log,
			exportPath: conf.Web.ExportPath,
		}
		switch conf.Tracker.Sinkertype {
		case "DB":
			s.searchSvc = service.New(log)
			s.searchParams = conf.Tracker.Postgres
		case "FILE":
			s.searchSvc = service.NewHistory(log)
			s.searchParams = conf.Tracker.File
		case "BOLT":
			s.searchSvc = service.NewBolt(log)
			s.searchParams = conf.Tracker.Bolt
		default:
			log.WithFields(logrus.Fields{
				"sinkerType": conf.Tracker.Sinkertype,
			}).Warn("Approach search disabled for this sinker")
		}

		log.WithFields(logrus.Fields{
			"listen": conf.Web.Listen,
		}).Info("Start HTTP service")

		//Start http server here
		log.Fatal(http.ListenAndServe(conf.Web.Listen, s.router()))
	},
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/approach", s.approachHandler).Methods(http.MethodGet)
	if s.searchSvc != nil {
		api.HandleFunc("/approaches", s.searchHandler).Methods(http.MethodGet)
	}

	return r
}

//Current web export, as written by the tracking loop
func (s *server) approachHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	content, err := ioutil.ReadFile(s.exportPath)
	if os.IsNotExist(err) {
		writeMessage(w, http.StatusNotFound, "no flight export yet")
		return
	}
	if err != nil {
		s.log.WithContext(r.Context()).WithFields(logrus.Fields{
			"Error": err,
		}).Error("Unable to read web export")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Write(content)
}

//Search on stored closest approaches
// params : time windows (from, to)
// return : json
func (s *server) searchHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()

	//Check time windows parameters
	fromTimeStamp, errFromTimeStamp := time.Parse(timeLayout, query.Get("from"))
	if errFromTimeStamp != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("need a time with layout (%s) - error: %s", timeLayout, errFromTimeStamp))
		return
	}
	toTimeStamp, errToTimeStamp := time.Parse(timeLayout, query.Get("to"))
	if errToTimeStamp != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("need a time with layout (%s) - error: %s", timeLayout, errToTimeStamp))
		return
	}

	data, errSearch := s.searchSvc.Search(r.Context(), s.searchParams, fromTimeStamp, toTimeStamp)
	if errSearch != nil {
		s.log.WithContext(r.Context()).WithFields(logrus.Fields{
			"Error": errSearch,
		}).Error("Search failed")
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf("internal server error (%s)", errSearch))
		return
	}

	result, errJSONMarshal := json.Marshal(response{
		Parameters: parameters{
			FromTimeStampParam: fromTimeStamp,
			ToTimeStampParam:   toTimeStamp,
		},
		NbApproach: len(data),
		Data:       data,
	})
	if errJSONMarshal != nil {
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf("internal server error (%s)", errJSONMarshal))
		return
	}

	w.Write(result)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
