package errs

import "sync"

// Collector accumulates errors across a sequence of script steps so a
// run can report every failed step instead of stopping at the first.
type Collector struct {
	errors []error
	mutex  sync.RWMutex
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		errors: make([]error, 0),
	}
}

// Add records an error. Nil errors are ignored.
func (c *Collector) Add(err error) {
	if err == nil {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.errors = append(c.errors, err)
}

// All returns a copy of the collected errors.
func (c *Collector) All() []error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]error, len(c.errors))
	copy(result, c.errors)

	return result
}

// HasErrors returns true if any error was collected.
func (c *Collector) HasErrors() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collector) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.errors)
}

// Clear drops all collected errors.
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.errors = c.errors[:0]
}
