package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	lockPortMin = 20000
	lockPortMax = 39999
)

// InstanceLock keeps a loopback listener open for the lifetime of the app.
type InstanceLock struct {
	listener net.Listener
}

// LockInstance claims the loopback port derived from appName.
func LockInstance(appName string) (*InstanceLock, error) {
	listener, err := net.Listen("tcp", LockAddress(appName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	return &InstanceLock{listener: listener}, nil
}

// LockAddress returns the loopback address used to lock appName.
func LockAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(lockPortMax - lockPortMin + 1)
	return fmt.Sprintf("127.0.0.1:%d", lockPortMin+int(hash.Sum32()%span))
}

// Release frees the lock. It is safe to call on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}
