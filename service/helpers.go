package service

import "fmt"

// background launches a function in a goroutine tracked by the service
// waitgroup, recovering from panics inside the goroutine so a failed task
// cannot take down the server.
func (s *service) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				s.logger.PrintError(fmt.Errorf("%s", err), nil)
			}
		}()
		fn()
	}()
}
