/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logging holds the process wide logger of the command line tools.
// The epc package itself never logs; it reports everything through errors.
package logging

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

/**
* Global logger
 */
var logger = logrus.New()

func Log() *logrus.Logger {
	return logger
}

// Configure sets the log level, one of DEBUG, INFO, WARN, or ERROR, and
// whether entries are written as JSON. An unknown level leaves the level
// unchanged.
func Configure(logLevel string, enableJsonLogging bool) {
	switch logLevel {
	case "DEBUG":
		logger.SetLevel(logrus.DebugLevel)
	case "INFO":
		logger.SetLevel(logrus.InfoLevel)
	case "WARN":
		logger.SetLevel(logrus.WarnLevel)
	case "ERROR":
		logger.SetLevel(logrus.ErrorLevel)
	}

	if enableJsonLogging {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}
}

/**
* Helper method to print objects with json-serialization information in a more human readable way
 */
func PrettyPrintObject(objectInterface interface{}) string {
	jsonBytes, err := json.Marshal(objectInterface)
	if err != nil {
		logger.Debugf("Was not able to pretty print the object: %v", objectInterface)
		return ""
	}
	return string(jsonBytes)
}

func init() {
	// logs go to stderr; stdout is reserved for converter output
	logger.SetOutput(os.Stderr)

	enableJsonLogging, err := strconv.ParseBool(os.Getenv("JSON_LOGGING_ENABLED"))
	if err != nil {
		logger.Debugf("Json log env-var not readable. Use default logging. %v", err)
		enableJsonLogging = false
	}
	Configure(os.Getenv("LOG_LEVEL"), enableJsonLogging)
}
