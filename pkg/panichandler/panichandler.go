// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package panichandler

import (
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// PanicHandler turns a recovered value into an error, call as
// `err = PanicHandler("name", recover(), log)` from a deferred func.
// Returns nil when nothing was recovered.
func PanicHandler(debugStr string, recoverVal any, log *logrus.Entry) error {
	if recoverVal == nil {
		return nil
	}
	if log != nil {
		log.Errorf("[panic] in %s: %v", debugStr, recoverVal)
		log.Debugf("[panic] stack trace:\n%s", string(debug.Stack()))
	}
	if err, ok := recoverVal.(error); ok {
		return fmt.Errorf("panic in %s: %w", debugStr, err)
	}
	return fmt.Errorf("panic in %s: %v", debugStr, recoverVal)
}
