package poses

import "github.com/swingtrack/swing-pose/internal/skeleton"

// rightHandedJoints holds the hand-authored right-handed reference skeleton for each
// swing position, in golfer_local_v1 meters. Left-handed joints are never authored.
var rightHandedJoints = map[skeleton.PPosition]JointMap{
	skeleton.P1: {
		skeleton.Head:          {X: 0, Y: 1.72, Z: 0.12},
		skeleton.Neck:          {X: 0, Y: 1.56, Z: 0.09},
		skeleton.SpineChest:    {X: 0.01, Y: 1.36, Z: 0.06},
		skeleton.Pelvis:        {X: 0, Y: 1.02, Z: 0},
		skeleton.LeftShoulder:  {X: 0.18, Y: 1.5, Z: 0.08},
		skeleton.RightShoulder: {X: -0.18, Y: 1.5, Z: 0.08},
		skeleton.LeftElbow:     {X: 0.14, Y: 1.25, Z: 0.18},
		skeleton.RightElbow:    {X: -0.08, Y: 1.22, Z: 0.2},
		skeleton.LeftWrist:     {X: 0.12, Y: 1.03, Z: 0.28},
		skeleton.RightWrist:    {X: -0.04, Y: 1, Z: 0.3},
		skeleton.LeftHip:       {X: 0.12, Y: 1, Z: 0.02},
		skeleton.RightHip:      {X: -0.12, Y: 1, Z: -0.02},
		skeleton.LeftKnee:      {X: 0.11, Y: 0.56, Z: 0.14},
		skeleton.RightKnee:     {X: -0.11, Y: 0.55, Z: 0.1},
		skeleton.LeftAnkle:     {X: 0.1, Y: 0.08, Z: 0.22},
		skeleton.RightAnkle:    {X: -0.1, Y: 0.08, Z: 0.18},
	},
	skeleton.P2: {
		skeleton.Head:          {X: 0, Y: 1.72, Z: 0.11},
		skeleton.Neck:          {X: 0, Y: 1.56, Z: 0.08},
		skeleton.SpineChest:    {X: -0.01, Y: 1.36, Z: 0.04},
		skeleton.Pelvis:        {X: -0.01, Y: 1.02, Z: -0.01},
		skeleton.LeftShoulder:  {X: 0.17, Y: 1.49, Z: 0.07},
		skeleton.RightShoulder: {X: -0.19, Y: 1.5, Z: 0.05},
		skeleton.LeftElbow:     {X: 0.05, Y: 1.28, Z: 0.07},
		skeleton.RightElbow:    {X: -0.2, Y: 1.23, Z: 0.12},
		skeleton.LeftWrist:     {X: -0.02, Y: 1.11, Z: -0.03},
		skeleton.RightWrist:    {X: -0.22, Y: 1.06, Z: 0.02},
		skeleton.LeftHip:       {X: 0.11, Y: 1, Z: 0.01},
		skeleton.RightHip:      {X: -0.13, Y: 1, Z: -0.03},
		skeleton.LeftKnee:      {X: 0.1, Y: 0.56, Z: 0.12},
		skeleton.RightKnee:     {X: -0.12, Y: 0.55, Z: 0.08},
		skeleton.LeftAnkle:     {X: 0.1, Y: 0.08, Z: 0.2},
		skeleton.RightAnkle:    {X: -0.1, Y: 0.08, Z: 0.16},
	},
	skeleton.P3: {
		skeleton.Head:          {X: 0, Y: 1.73, Z: 0.1},
		skeleton.Neck:          {X: -0.01, Y: 1.57, Z: 0.07},
		skeleton.SpineChest:    {X: -0.04, Y: 1.38, Z: 0},
		skeleton.Pelvis:        {X: -0.02, Y: 1.02, Z: -0.02},
		skeleton.LeftShoulder:  {X: 0.13, Y: 1.5, Z: 0.03},
		skeleton.RightShoulder: {X: -0.21, Y: 1.51, Z: -0.01},
		skeleton.LeftElbow:     {X: -0.1, Y: 1.41, Z: -0.18},
		skeleton.RightElbow:    {X: -0.3, Y: 1.3, Z: -0.08},
		skeleton.LeftWrist:     {X: -0.18, Y: 1.45, Z: -0.34},
		skeleton.RightWrist:    {X: -0.34, Y: 1.33, Z: -0.24},
		skeleton.LeftHip:       {X: 0.1, Y: 1, Z: 0},
		skeleton.RightHip:      {X: -0.14, Y: 1, Z: -0.04},
		skeleton.LeftKnee:      {X: 0.09, Y: 0.57, Z: 0.1},
		skeleton.RightKnee:     {X: -0.13, Y: 0.55, Z: 0.05},
		skeleton.LeftAnkle:     {X: 0.1, Y: 0.08, Z: 0.18},
		skeleton.RightAnkle:    {X: -0.11, Y: 0.08, Z: 0.13},
	},
	skeleton.P4: {
		skeleton.Head:          {X: 0.01, Y: 1.74, Z: 0.09},
		skeleton.Neck:          {X: -0.02, Y: 1.58, Z: 0.05},
		skeleton.SpineChest:    {X: -0.07, Y: 1.4, Z: -0.04},
		skeleton.Pelvis:        {X: -0.03, Y: 1.03, Z: -0.03},
		skeleton.LeftShoulder:  {X: 0.1, Y: 1.51, Z: -0.01},
		skeleton.RightShoulder: {X: -0.23, Y: 1.52, Z: -0.06},
		skeleton.LeftElbow:     {X: -0.18, Y: 1.52, Z: -0.34},
		skeleton.RightElbow:    {X: -0.28, Y: 1.56, Z: -0.28},
		skeleton.LeftWrist:     {X: -0.12, Y: 1.66, Z: -0.52},
		skeleton.RightWrist:    {X: -0.23, Y: 1.7, Z: -0.48},
		skeleton.LeftHip:       {X: 0.09, Y: 1.01, Z: -0.01},
		skeleton.RightHip:      {X: -0.15, Y: 1.01, Z: -0.06},
		skeleton.LeftKnee:      {X: 0.07, Y: 0.58, Z: 0.07},
		skeleton.RightKnee:     {X: -0.14, Y: 0.55, Z: 0},
		skeleton.LeftAnkle:     {X: 0.09, Y: 0.08, Z: 0.15},
		skeleton.RightAnkle:    {X: -0.11, Y: 0.08, Z: 0.08},
	},
	skeleton.P5: {
		skeleton.Head:          {X: 0, Y: 1.73, Z: 0.1},
		skeleton.Neck:          {X: -0.01, Y: 1.57, Z: 0.06},
		skeleton.SpineChest:    {X: -0.03, Y: 1.37, Z: 0.03},
		skeleton.Pelvis:        {X: -0.01, Y: 1.02, Z: -0.01},
		skeleton.LeftShoulder:  {X: 0.14, Y: 1.49, Z: 0.04},
		skeleton.RightShoulder: {X: -0.2, Y: 1.5, Z: 0.02},
		skeleton.LeftElbow:     {X: 0, Y: 1.42, Z: -0.14},
		skeleton.RightElbow:    {X: -0.24, Y: 1.35, Z: -0.1},
		skeleton.LeftWrist:     {X: -0.04, Y: 1.32, Z: -0.24},
		skeleton.RightWrist:    {X: -0.2, Y: 1.25, Z: -0.16},
		skeleton.LeftHip:       {X: 0.11, Y: 1, Z: 0.01},
		skeleton.RightHip:      {X: -0.13, Y: 1, Z: -0.03},
		skeleton.LeftKnee:      {X: 0.1, Y: 0.57, Z: 0.12},
		skeleton.RightKnee:     {X: -0.12, Y: 0.56, Z: 0.05},
		skeleton.LeftAnkle:     {X: 0.1, Y: 0.08, Z: 0.2},
		skeleton.RightAnkle:    {X: -0.1, Y: 0.08, Z: 0.12},
	},
	skeleton.P6: {
		skeleton.Head:          {X: 0, Y: 1.72, Z: 0.12},
		skeleton.Neck:          {X: 0.01, Y: 1.56, Z: 0.08},
		skeleton.SpineChest:    {X: 0.02, Y: 1.35, Z: 0.1},
		skeleton.Pelvis:        {X: 0.01, Y: 1.01, Z: 0.01},
		skeleton.LeftShoulder:  {X: 0.17, Y: 1.47, Z: 0.11},
		skeleton.RightShoulder: {X: -0.17, Y: 1.48, Z: 0.09},
		skeleton.LeftElbow:     {X: 0.08, Y: 1.27, Z: 0.05},
		skeleton.RightElbow:    {X: -0.14, Y: 1.23, Z: 0.08},
		skeleton.LeftWrist:     {X: 0.02, Y: 1.08, Z: -0.02},
		skeleton.RightWrist:    {X: -0.12, Y: 1.03, Z: 0},
		skeleton.LeftHip:       {X: 0.12, Y: 1, Z: 0.03},
		skeleton.RightHip:      {X: -0.12, Y: 1, Z: -0.01},
		skeleton.LeftKnee:      {X: 0.11, Y: 0.57, Z: 0.15},
		skeleton.RightKnee:     {X: -0.11, Y: 0.56, Z: 0.08},
		skeleton.LeftAnkle:     {X: 0.1, Y: 0.08, Z: 0.23},
		skeleton.RightAnkle:    {X: -0.1, Y: 0.08, Z: 0.15},
	},
	skeleton.P7: {
		skeleton.Head:          {X: 0, Y: 1.72, Z: 0.14},
		skeleton.Neck:          {X: 0.02, Y: 1.56, Z: 0.11},
		skeleton.SpineChest:    {X: 0.04, Y: 1.35, Z: 0.14},
		skeleton.Pelvis:        {X: 0.03, Y: 1.01, Z: 0.04},
		skeleton.LeftShoulder:  {X: 0.19, Y: 1.47, Z: 0.15},
		skeleton.RightShoulder: {X: -0.15, Y: 1.47, Z: 0.13},
		skeleton.LeftElbow:     {X: 0.12, Y: 1.2, Z: 0.2},
		skeleton.RightElbow:    {X: -0.08, Y: 1.15, Z: 0.22},
		skeleton.LeftWrist:     {X: 0.1, Y: 1.02, Z: 0.34},
		skeleton.RightWrist:    {X: -0.02, Y: 0.99, Z: 0.32},
		skeleton.LeftHip:       {X: 0.13, Y: 1, Z: 0.06},
		skeleton.RightHip:      {X: -0.11, Y: 1, Z: 0.02},
		skeleton.LeftKnee:      {X: 0.12, Y: 0.58, Z: 0.16},
		skeleton.RightKnee:     {X: -0.1, Y: 0.56, Z: 0.11},
		skeleton.LeftAnkle:     {X: 0.11, Y: 0.08, Z: 0.24},
		skeleton.RightAnkle:    {X: -0.09, Y: 0.08, Z: 0.18},
	},
	skeleton.P8: {
		skeleton.Head:          {X: 0, Y: 1.73, Z: 0.15},
		skeleton.Neck:          {X: 0.02, Y: 1.57, Z: 0.13},
		skeleton.SpineChest:    {X: 0.05, Y: 1.37, Z: 0.19},
		skeleton.Pelvis:        {X: 0.04, Y: 1.01, Z: 0.07},
		skeleton.LeftShoulder:  {X: 0.22, Y: 1.5, Z: 0.23},
		skeleton.RightShoulder: {X: -0.12, Y: 1.45, Z: 0.17},
		skeleton.LeftElbow:     {X: 0.24, Y: 1.36, Z: 0.36},
		skeleton.RightElbow:    {X: -0.02, Y: 1.2, Z: 0.3},
		skeleton.LeftWrist:     {X: 0.26, Y: 1.46, Z: 0.52},
		skeleton.RightWrist:    {X: 0.04, Y: 1.24, Z: 0.42},
		skeleton.LeftHip:       {X: 0.14, Y: 1, Z: 0.09},
		skeleton.RightHip:      {X: -0.1, Y: 1, Z: 0.04},
		skeleton.LeftKnee:      {X: 0.13, Y: 0.58, Z: 0.18},
		skeleton.RightKnee:     {X: -0.09, Y: 0.56, Z: 0.12},
		skeleton.LeftAnkle:     {X: 0.12, Y: 0.08, Z: 0.25},
		skeleton.RightAnkle:    {X: -0.08, Y: 0.08, Z: 0.18},
	},
	skeleton.P9: {
		skeleton.Head:          {X: 0.01, Y: 1.74, Z: 0.16},
		skeleton.Neck:          {X: 0.03, Y: 1.58, Z: 0.15},
		skeleton.SpineChest:    {X: 0.07, Y: 1.39, Z: 0.23},
		skeleton.Pelvis:        {X: 0.05, Y: 1.01, Z: 0.1},
		skeleton.LeftShoulder:  {X: 0.24, Y: 1.53, Z: 0.28},
		skeleton.RightShoulder: {X: -0.1, Y: 1.43, Z: 0.2},
		skeleton.LeftElbow:     {X: 0.3, Y: 1.56, Z: 0.42},
		skeleton.RightElbow:    {X: 0.06, Y: 1.23, Z: 0.36},
		skeleton.LeftWrist:     {X: 0.32, Y: 1.68, Z: 0.54},
		skeleton.RightWrist:    {X: 0.16, Y: 1.35, Z: 0.46},
		skeleton.LeftHip:       {X: 0.15, Y: 1, Z: 0.11},
		skeleton.RightHip:      {X: -0.09, Y: 1, Z: 0.06},
		skeleton.LeftKnee:      {X: 0.14, Y: 0.58, Z: 0.2},
		skeleton.RightKnee:     {X: -0.08, Y: 0.56, Z: 0.13},
		skeleton.LeftAnkle:     {X: 0.12, Y: 0.08, Z: 0.26},
		skeleton.RightAnkle:    {X: -0.07, Y: 0.08, Z: 0.18},
	},
	skeleton.P10: {
		skeleton.Head:          {X: 0.02, Y: 1.74, Z: 0.17},
		skeleton.Neck:          {X: 0.04, Y: 1.58, Z: 0.16},
		skeleton.SpineChest:    {X: 0.08, Y: 1.4, Z: 0.24},
		skeleton.Pelvis:        {X: 0.06, Y: 1.02, Z: 0.11},
		skeleton.LeftShoulder:  {X: 0.25, Y: 1.54, Z: 0.3},
		skeleton.RightShoulder: {X: -0.09, Y: 1.42, Z: 0.21},
		skeleton.LeftElbow:     {X: 0.34, Y: 1.6, Z: 0.36},
		skeleton.RightElbow:    {X: 0.1, Y: 1.26, Z: 0.34},
		skeleton.LeftWrist:     {X: 0.36, Y: 1.58, Z: 0.2},
		skeleton.RightWrist:    {X: 0.22, Y: 1.34, Z: 0.32},
		skeleton.LeftHip:       {X: 0.16, Y: 1, Z: 0.12},
		skeleton.RightHip:      {X: -0.08, Y: 1, Z: 0.07},
		skeleton.LeftKnee:      {X: 0.15, Y: 0.58, Z: 0.21},
		skeleton.RightKnee:     {X: -0.08, Y: 0.56, Z: 0.14},
		skeleton.LeftAnkle:     {X: 0.13, Y: 0.08, Z: 0.27},
		skeleton.RightAnkle:    {X: -0.07, Y: 0.08, Z: 0.19},
	},
}
