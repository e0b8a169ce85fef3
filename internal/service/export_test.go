package service

// Cfg exposes the worker's resolved config to the external test package.
func (w *ParseQueueWorker) Cfg() ParseQueueConfig { return w.cfg }
